package remote

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"fundmate/appcore/internal/model"
	"fundmate/appcore/internal/session"
)

const clientTimeout = 10 * time.Second

// Client is the REST boundary to the backend. Every call carries the
// session's bearer token; a 401 from any endpoint tears the session down
// globally. No call is auto-retried: failed user actions are reconciled by
// an explicit reload, not by the transport.
type Client struct {
	http    *resty.Client
	session *session.Session
}

func NewClient(baseURL string, sess *session.Session) *Client {
	hc := resty.New()
	hc.
		SetBaseURL(baseURL).
		SetTimeout(clientTimeout).
		SetHeader("Content-Type", "application/json")

	hc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		token, err := sess.Token()
		if err != nil {
			// unauthenticated calls go out bare, the server answers 401
			return nil
		}
		req.SetHeader("Authorization", "Bearer "+token)
		return nil
	})

	return &Client{
		http:    hc,
		session: sess,
	}
}

// check maps a resty response to the client error taxonomy.
func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrNetwork, err)
	}

	sc := resp.StatusCode()
	switch {
	case sc == http.StatusUnauthorized:
		c.session.Invalidate()
		return fmt.Errorf("%s %s: %w",
			resp.Request.Method, resp.Request.URL, model.ErrUnauthorized)
	case sc >= 200 && sc < 300:
		return nil
	default:
		detail := strings.TrimSpace(string(resp.Body()))
		if detail == "" {
			detail = http.StatusText(sc)
		}
		return fmt.Errorf("%w: http %d: %s", model.ErrOperationFailed, sc, detail)
	}
}

// textBody extracts a plain-text response body, tolerating servers that
// quote single string values as JSON.
func textBody(resp *resty.Response) string {
	s := strings.TrimSpace(string(resp.Body()))
	return strings.Trim(s, "\"")
}
