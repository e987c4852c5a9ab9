// Package alert implements ports.Notifier for the HTML front end. Alerts
// that must survive a navigation travel as session flashes; the rest are
// rendered with the current response.
package alert

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/csg33k/employee-admin/internal/ports"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Alert struct {
	Kind    Kind
	Message string
}

const (
	sessionName = "employee_admin"
	flashKey    = "alerts"
)

func init() {
	gob.Register(Alert{})
}

// NewCookieStore returns the session store used for flashes.
func NewCookieStore(secret []byte, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

type Center struct {
	sessions sessions.Store
	log      *slog.Logger
}

func NewCenter(store sessions.Store, log *slog.Logger) *Center {
	return &Center{sessions: store, log: log}
}

// For binds a notifier to one request.
func (c *Center) For(w http.ResponseWriter, r *http.Request) *Notifier {
	return &Notifier{center: c, w: w, r: r}
}

// Notifier collects the alerts of a single request.
type Notifier struct {
	center  *Center
	w       http.ResponseWriter
	r       *http.Request
	current []Alert
}

var _ ports.Notifier = (*Notifier)(nil)

func (n *Notifier) Success(message string, opts ports.AlertOptions) {
	a := Alert{Kind: KindSuccess, Message: message}
	if opts.KeepAfterRouteChange {
		n.flash(a)
		return
	}
	n.current = append(n.current, a)
}

func (n *Notifier) Error(err error) {
	if err == nil {
		return
	}
	n.center.log.Warn("request failed", "path", n.r.URL.Path, "err", err)
	n.current = append(n.current, Alert{Kind: KindError, Message: err.Error()})
}

// Drain returns the flashes left by the previous request followed by the
// alerts raised during this one, and clears both. It must run before the
// response body is written because it may set the session cookie.
func (n *Notifier) Drain() []Alert {
	var out []Alert
	sess, err := n.center.sessions.Get(n.r, sessionName)
	if err != nil {
		n.center.log.Warn("read alert session", "err", err)
	}
	if sess != nil {
		if flashes := sess.Flashes(flashKey); len(flashes) > 0 {
			for _, f := range flashes {
				if a, ok := f.(Alert); ok {
					out = append(out, a)
				}
			}
			if err := sess.Save(n.r, n.w); err != nil {
				n.center.log.Warn("save alert session", "err", err)
			}
		}
	}
	out = append(out, n.current...)
	n.current = nil
	return out
}

func (n *Notifier) flash(a Alert) {
	sess, err := n.center.sessions.Get(n.r, sessionName)
	if sess == nil {
		n.center.log.Warn("open alert session", "err", err)
		n.current = append(n.current, a)
		return
	}
	sess.AddFlash(a, flashKey)
	if err := sess.Save(n.r, n.w); err != nil {
		n.center.log.Warn("save alert session", "err", err)
		n.current = append(n.current, a)
	}
}
