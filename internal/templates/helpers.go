package templates

import (
	"net/url"
	"path"
	"strings"

	"github.com/csg33k/employee-admin/internal/adapters/alert"
	"github.com/csg33k/employee-admin/internal/domain"
	"github.com/csg33k/employee-admin/internal/employees"
)

func editURL(base string, id domain.ID) string {
	return employees.EditURL(base, id)
}

func deleteURL(base string, id domain.ID) string {
	return base + "/" + url.PathEscape(string(id))
}

// isImageURL reports whether a picture value can be shown as a thumbnail
// rather than as text.
func isImageURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg":
		return true
	}
	return false
}

func alertClass(k alert.Kind) string {
	if k == alert.KindError {
		return "alert-error"
	}
	return "alert-success"
}
