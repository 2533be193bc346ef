package pingdom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NordCoder/uptime-report/internal/domain/check"
	"github.com/NordCoder/uptime-report/internal/domain/summary"
)

const maxErrBody = 512

type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	UserAgent string
}

// Client talks to the monitoring service REST API. It holds no mutable state
// and is safe for concurrent use.
type Client struct {
	c         *http.Client
	base      string
	apiKey    string
	userAgent string
}

func New(cfg Config) *Client {
	return &Client{
		c:         newHTTPClient(cfg.Timeout),
		base:      strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
	}
}

func (cl *Client) ListChecks(ctx context.Context) ([]check.Check, error) {
	var resp checksResp
	if err := cl.getJSON(ctx, cl.base+"/checks", &resp); err != nil {
		return nil, fmt.Errorf("list checks: %w", err)
	}
	if resp.Checks == nil {
		return nil, fmt.Errorf("list checks: %w", &summary.FetchError{
			Kind: summary.ErrDecode,
			Err:  errors.New("missing checks"),
		})
	}
	out := make([]check.Check, 0, len(*resp.Checks))
	for _, c := range *resp.Checks {
		out = append(out, check.Check{ID: string(c.ID), Name: c.Name})
	}
	return out, nil
}

func (cl *Client) WeeklySummary(ctx context.Context, checkID string, r summary.DateRange) ([]summary.WeeklyRecord, error) {
	q := url.Values{}
	q.Set("from", strconv.FormatInt(r.From, 10))
	q.Set("to", strconv.FormatInt(r.To, 10))
	q.Set("includeuptime", "true")
	q.Set("resolution", "week")
	u := cl.base + "/summary.performance/" + url.PathEscape(checkID) + "?" + q.Encode()

	var resp summaryResp
	if err := cl.getJSON(ctx, u, &resp); err != nil {
		var fe *summary.FetchError
		if errors.As(err, &fe) {
			fe.CheckID = checkID
		}
		return nil, err
	}
	if resp.Summary.Weeks == nil {
		return nil, &summary.FetchError{
			Kind:    summary.ErrDecode,
			CheckID: checkID,
			Err:     errors.New("missing summary.weeks"),
		}
	}
	return *resp.Summary.Weeks, nil
}

func (cl *Client) getJSON(ctx context.Context, u string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &summary.FetchError{Kind: summary.ErrNetwork, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+cl.apiKey)
	req.Header.Set("Accept", "application/json")
	if cl.userAgent != "" {
		req.Header.Set("User-Agent", cl.userAgent)
	}

	resp, err := cl.c.Do(req)
	if err != nil {
		return &summary.FetchError{Kind: summary.ErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fe := &summary.FetchError{Kind: summary.ErrRemoteRejected, Status: resp.StatusCode}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		if msg := strings.TrimSpace(string(body)); msg != "" {
			fe.Err = errors.New(msg)
		}
		return fe
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &summary.FetchError{Kind: summary.ErrDecode, Err: err}
	}
	return nil
}
