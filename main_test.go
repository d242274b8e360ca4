package main

import (
	"reflect"
	"testing"
)

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{
		"-file", "hug.csv",
		"-region", "서울,경기", "-region", "부산",
		"-axis1", "오피스텔",
		"-area-min", "20.5",
		"-deposit-max", "100,000,000",
		"-dedupe",
		"-format", "csv",
	})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if o.file != "hug.csv" || o.format != "csv" {
		t.Errorf("file/format: got %q / %q", o.file, o.format)
	}
	if want := []string{"서울", "경기", "부산"}; !reflect.DeepEqual(o.sel.Regions, want) {
		t.Errorf("regions: got %v, want %v", o.sel.Regions, want)
	}
	if o.sel.AreaMin == nil || *o.sel.AreaMin != 20.5 {
		t.Errorf("area min: got %v", o.sel.AreaMin)
	}
	if o.sel.AreaMax != nil {
		t.Errorf("area max should be unset, got %v", *o.sel.AreaMax)
	}
	if o.sel.DepositMax == nil || *o.sel.DepositMax != 100_000_000 {
		t.Errorf("deposit max: got %v", o.sel.DepositMax)
	}
	if !o.sel.Deduplicate {
		t.Error("dedupe should be set")
	}
}

func TestParseFlagsRejects(t *testing.T) {
	for _, args := range [][]string{
		{"-format", "xml"},
		{"-area-min", "abc"},
		{"-deposit-min", "1.5"},
	} {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}
