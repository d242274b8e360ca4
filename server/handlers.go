package server

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"rental-viewer/models"
	"rental-viewer/services"
	"rental-viewer/storage"
)

var (
	errBadFileName = errors.New("invalid file name")
	errNotFound    = errors.New("file not found")
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(c, "ok", nil))
}

func (s *Server) listFiles(c *gin.Context) {
	files, err := storage.ListSources(s.cfg.SourceDir)
	if err != nil {
		s.logger.Error("[http] %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(c, "could not list source files"))
		return
	}
	if files == nil {
		files = []string{}
	}
	c.JSON(http.StatusOK, successResponse(c, fmt.Sprintf("%d files", len(files)), files))
}

// query runs the selection of the current request against the :file
// dataset. An empty selection is not an error here: the view is returned
// with a message.
func (s *Server) query(c *gin.Context, file string) (*models.View, string, error) {
	sel, err := bindSelection(c)
	if err != nil {
		return nil, "", err
	}
	path, err := storage.ResolveSource(s.cfg.SourceDir, file)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", errBadFileName, file)
	}

	view, err := s.viewer.Query(c.Request.Context(), path, sel)
	switch {
	case errors.Is(err, services.ErrEmptySelection):
		return view, "선택한 지역에 해당하는 주택이 없습니다", nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, "", fmt.Errorf("%w: %q", errNotFound, file)
	case err != nil:
		return nil, "", err
	case view.Total == 0:
		return view, "조건에 맞는 주택이 없습니다", nil
	}
	return view, fmt.Sprintf("%d rows", view.Total), nil
}

func (s *Server) fail(c *gin.Context, err error) {
	status, msg := statusFor(err), err.Error()
	if status >= http.StatusInternalServerError {
		s.logger.Error("[http] %s: %v", c.Param("file"), err)
		msg = "internal error"
	}
	c.JSON(status, errorResponse(c, msg))
}

func (s *Server) options(c *gin.Context) {
	view, msg, err := s.query(c, c.Param("file"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(c, msg, view.Options))
}

func (s *Server) listings(c *gin.Context) {
	view, msg, err := s.query(c, c.Param("file"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(c, msg, view))
}

func (s *Server) exportCSV(c *gin.Context) {
	file := c.Param("file")
	view, _, err := s.query(c, file)
	if err != nil {
		s.fail(c, err)
		return
	}

	name := strings.TrimSuffix(file, filepath.Ext(file)) + ".csv"
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(name))
	c.Status(http.StatusOK)

	w := storage.NewCSVWriter(c.Writer)
	if err := w.WriteTable(&view.Table); err != nil {
		s.logger.Error("[http] export %s: %v", file, err)
	}
}

type indexPage struct {
	Files   []string
	File    string
	View    *models.View
	Message string
	Error   string
	Export  template.URL
	Params  url.Values
}

func (s *Server) index(c *gin.Context) {
	page := indexPage{File: c.Query("file")}

	files, err := storage.ListSources(s.cfg.SourceDir)
	if err != nil {
		s.logger.Error("[http] %v", err)
		page.Error = "원본 파일 목록을 읽을 수 없습니다"
		c.HTML(http.StatusInternalServerError, "index", page)
		return
	}
	page.Files = files
	if page.File == "" && len(files) > 0 {
		page.File = files[0]
	}
	if page.File == "" {
		page.Message = "원본 폴더에 파일이 없습니다"
		c.HTML(http.StatusOK, "index", page)
		return
	}

	view, msg, err := s.query(c, page.File)
	if err != nil {
		status := statusFor(err)
		page.Error = err.Error()
		if status >= http.StatusInternalServerError {
			s.logger.Error("[http] %s: %v", page.File, err)
			page.Error = "internal error"
		}
		c.HTML(status, "index", page)
		return
	}
	page.View = view
	if view.Total == 0 {
		page.Message = msg
	}
	page.Export = template.URL("/api/datasets/" + url.PathEscape(page.File) + "/export.csv?" + c.Request.URL.RawQuery)
	page.Params = c.Request.URL.Query()
	c.HTML(http.StatusOK, "index", page)
}
