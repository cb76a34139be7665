package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/projectdiscovery/gcache"
	"github.com/tidwall/gjson"

	"github.com/nordpick/nordpick/pkg/types"
)

// Client fetches the reference collections and candidate servers from the
// directory API. Responses are memoized for the lifetime of the client so a
// listing mode plus table building never hits the same endpoint twice.
type Client struct {
	base string
	http *http.Client
	memo gcache.Cache[string, []byte]
}

// NewClient creates a client against the given base URL.
func NewClient(base string) *Client {
	transport := http.DefaultTransport

	client := &http.Client{
		Timeout: 30 * time.Second,
		// add headers to every request
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			req.Header.Set("User-Agent", "nordpick")
			req.Header.Set("Accept", "application/json")
			return transport.RoundTrip(req)
		}),
	}

	return &Client{
		base: base,
		http: client,
		memo: gcache.New[string, []byte](16).LRU().Build(),
	}
}

// Countries fetches the countries reference collection.
func (c *Client) Countries(ctx context.Context) ([]types.Country, error) {
	var countries []types.Country
	if err := c.getJSON(ctx, c.base+"/servers/countries", &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// Technologies fetches the technologies reference collection.
func (c *Client) Technologies(ctx context.Context) ([]types.Technology, error) {
	var technologies []types.Technology
	if err := c.getJSON(ctx, c.base+"/technologies", &technologies); err != nil {
		return nil, err
	}
	return technologies, nil
}

// Groups fetches the server groups reference collection.
func (c *Client) Groups(ctx context.Context) ([]types.Group, error) {
	var groups []types.Group
	if err := c.getJSON(ctx, c.base+"/servers/groups", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Servers fetches the candidate servers for a query. Only the fields the
// selection pass needs are plucked from the payload.
func (c *Client) Servers(ctx context.Context, query Query) ([]types.Server, error) {
	body, err := c.get(ctx, query.URL(c.base))
	if err != nil {
		return nil, err
	}

	var servers []types.Server
	gjson.ParseBytes(body).ForEach(func(_, value gjson.Result) bool {
		server := types.Server{
			Hostname: value.Get("hostname").String(),
			Address:  value.Get("station").String(),
			Load:     int(value.Get("load").Int()),
		}
		value.Get("technologies").ForEach(func(_, technology gjson.Result) bool {
			server.Technologies = append(server.Technologies, technology.Get("identifier").String())
			return true
		})
		value.Get("groups").ForEach(func(_, group gjson.Result) bool {
			server.Groups = append(server.Groups, group.Get("identifier").String())
			return true
		})
		servers = append(servers, server)
		return true
	})
	return servers, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if c.memo.Has(url) {
		if body, err := c.memo.Get(url); err == nil {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}

	_ = c.memo.Set(url, body)
	return body, nil
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (rf roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return rf(req)
}
