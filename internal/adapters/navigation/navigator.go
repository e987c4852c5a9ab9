// Package navigation implements ports.Navigator with HTTP redirects.
package navigation

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/csg33k/employee-admin/internal/ports"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// Navigator redirects the response it is bound to. htmx requests get an
// HX-Redirect header so the browser performs a full page load; everything
// else gets 303 See Other.
type Navigator struct {
	w      http.ResponseWriter
	r      *http.Request
	target string
}

var _ ports.Navigator = (*Navigator)(nil)

func For(w http.ResponseWriter, r *http.Request) *Navigator {
	return &Navigator{w: w, r: r}
}

// Push writes the redirect. Nothing else may be written to the response
// afterwards.
func (n *Navigator) Push(to string) {
	n.target = Resolve(n.r.URL.Path, to)
	if IsHTMX(n.r) {
		n.w.Header().Set("HX-Redirect", n.target)
		n.w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(n.w, n.r, n.target, http.StatusSeeOther)
}

// Navigated reports whether Push ran, and where to.
func (n *Navigator) Navigated() (string, bool) {
	return n.target, n.target != ""
}

// Resolve applies a possibly relative path to the current one the way a
// browser resolves a link, then drops any trailing slash:
//
//	Resolve("/employees/add", ".")      == "/employees"
//	Resolve("/employees/edit/7", "..")  == "/employees"
func Resolve(current, to string) string {
	base := &url.URL{Path: current}
	p := base.ResolveReference(&url.URL{Path: to}).Path
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		p = "/"
	}
	return p
}
