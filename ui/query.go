package ui

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"asetfilter/models"

	"github.com/gin-gonic/gin"
)

const formParseMemory = 32 << 20

// requestValues returns the filter parameters of the request: the posted
// form for POST requests, the URL query otherwise.
func requestValues(c *gin.Context) url.Values {
	if c.Request.Method == http.MethodPost {
		if err := c.Request.ParseMultipartForm(formParseMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return url.Values{}
		}
		return c.Request.PostForm
	}
	return c.Request.URL.Query()
}

// filterFromValues maps request parameters onto an AssetFilter. Invalid
// numbers count as "not filtered", matching the form's optional fields.
func filterFromValues(v url.Values) models.AssetFilter {
	f := models.AssetFilter{
		NamaAsset:     strings.TrimSpace(v.Get("nama_asset")),
		Kecamatan:     strings.TrimSpace(v.Get("kecamatan")),
		SatuanKerja:   strings.TrimSpace(v.Get("satuan_kerja")),
		Alamat:        strings.TrimSpace(v.Get("alamat")),
		MinLuas:       floatParam(v.Get("min_luas")),
		MaxLuas:       floatParam(v.Get("max_luas")),
		StatusTanah:   strings.TrimSpace(v.Get("status_tanah")),
		Pemetaan:      strings.TrimSpace(v.Get("pemetaan")),
		Catatan:       strings.TrimSpace(v.Get("catatan")),
		K3:            strings.TrimSpace(v.Get("k3")),
		TanahBangunan: strings.TrimSpace(v.Get("tanah_bangunan")),
		AsalUsul:      strings.TrimSpace(v.Get("asal_usul")),
		LainLain:      strings.TrimSpace(v.Get("lain_lain")),
	}
	for _, s := range v["status"] {
		if s = strings.TrimSpace(s); s != "" {
			f.Statuses = append(f.Statuses, s)
		}
	}
	return f
}

// listQueryFromValues maps paging and ordering parameters onto a ListQuery.
// The page size is left for the service to fill in.
func listQueryFromValues(v url.Values) models.ListQuery {
	return models.ListQuery{
		Filter:    filterFromValues(v),
		Page:      intParam(v.Get("page"), 1),
		SortBy:    strings.TrimSpace(v.Get("sort")),
		SortOrder: strings.TrimSpace(v.Get("order")),
	}
}

func floatParam(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &val
}

func intParam(raw string, fallback int) int {
	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return val
}

// linkQuery rebuilds the current query string without the named parameters,
// for templates that re-issue it with different paging or ordering.
func linkQuery(v url.Values, drop ...string) string {
	out := url.Values{}
	for key, vals := range v {
		out[key] = vals
	}
	for _, key := range drop {
		out.Del(key)
	}
	out.Del("flash")
	out.Del("flash_type")
	return out.Encode()
}

// Flash levels the fragments/flash.html partial knows how to style.
const (
	flashSuccess = "success"
	flashError   = "error"
	flashWarning = "warning"
)

// flashMessage is a one-shot notice. The app keeps no session store, so
// redirects carry their notice in the query string.
type flashMessage struct {
	Level   string
	Message string
}

// flashRedirect sends the browser to target with a notice attached.
func (s *Server) flashRedirect(c *gin.Context, target, level, message string) {
	v := url.Values{}
	v.Set("flash", message)
	v.Set("flash_type", level)
	c.Redirect(http.StatusSeeOther, target+"?"+v.Encode())
}

// flashFromQuery recovers a notice attached by flashRedirect.
func flashFromQuery(c *gin.Context) flashMessage {
	msg := c.Query("flash")
	if msg == "" {
		return flashMessage{}
	}
	level := c.Query("flash_type")
	if level == "" {
		level = flashSuccess
	}
	return flashMessage{Level: level, Message: msg}
}
