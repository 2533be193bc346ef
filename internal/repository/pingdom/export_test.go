package pingdom

import "net/http"

func (cl *Client) WithHTTPClient(h *http.Client) *Client {
	cp := *cl
	cp.c = h
	return &cp
}
