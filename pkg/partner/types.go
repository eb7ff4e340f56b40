package partner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// Link is a server supplied link, used for continuation and paging.
type Link struct {
	URI     string            `json:"uri"               yaml:"uri"`
	Method  string            `json:"method,omitempty"  yaml:"method,omitempty"`
	Headers map[string]string `json:"-"                 yaml:"headers,omitempty"`
}

type linkHeader struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type linkWire struct {
	URI     string          `json:"uri"`
	Method  string          `json:"method,omitempty"`
	Headers json.RawMessage `json:"headers,omitempty"`
}

// MarshalJSON writes headers in the service's key/value list form.
func (l Link) MarshalJSON() ([]byte, error) {
	wire := struct {
		URI     string       `json:"uri"`
		Method  string       `json:"method,omitempty"`
		Headers []linkHeader `json:"headers,omitempty"`
	}{
		URI:    l.URI,
		Method: l.Method,
	}

	keys := make([]string, 0, len(l.Headers))
	for key := range l.Headers {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		wire.Headers = append(wire.Headers, linkHeader{Key: key, Value: l.Headers[key]})
	}

	data, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("marshaling link: %w", err)
	}

	return data, nil
}

// UnmarshalJSON accepts headers either as a key/value list or as an object.
func (l *Link) UnmarshalJSON(data []byte) error {
	var wire linkWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("parsing link: %w", err)
	}

	l.URI = wire.URI
	l.Method = wire.Method
	l.Headers = nil

	raw := bytes.TrimSpace(wire.Headers)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	headers := make(map[string]string)

	if raw[0] == '[' {
		var pairs []linkHeader
		if err := json.Unmarshal(raw, &pairs); err != nil {
			return fmt.Errorf("parsing link headers: %w", err)
		}

		for _, pair := range pairs {
			headers[pair.Key] = pair.Value
		}
	} else if err := json.Unmarshal(raw, &headers); err != nil {
		return fmt.Errorf("parsing link headers: %w", err)
	}

	l.Headers = headers

	return nil
}

// ResourceLinks holds the standard navigation links of a resource.
type ResourceLinks struct {
	Self     *Link `json:"self,omitempty"     yaml:"self,omitempty"`
	Next     *Link `json:"next,omitempty"     yaml:"next,omitempty"`
	Previous *Link `json:"previous,omitempty" yaml:"previous,omitempty"`
}

// ResourceAttributes describes the object type of a resource.
type ResourceAttributes struct {
	Etag       string `json:"etag,omitempty"       yaml:"etag,omitempty"`
	ObjectType string `json:"objectType,omitempty" yaml:"object_type,omitempty"`
}

// ResourceCollection is an ordered page of resources in server order.
type ResourceCollection[T any] struct {
	TotalCount int                `json:"totalCount"           yaml:"total_count"`
	Items      []T                `json:"items"                yaml:"items"`
	Links      ResourceLinks      `json:"links,omitempty"      yaml:"links,omitempty"`
	Attributes ResourceAttributes `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// HasNext reports whether the server returned a continuation link.
func (c *ResourceCollection[T]) HasNext() bool {
	return c != nil && c.Links.Next != nil && c.Links.Next.URI != ""
}

// SeekBasedResourceCollection is a collection paged by continuation token.
type SeekBasedResourceCollection[T any] struct {
	ResourceCollection[T]

	ContinuationToken string `json:"continuationToken,omitempty" yaml:"continuation_token,omitempty"`
}

// LinkFollower resolves server supplied links.
type LinkFollower interface {
	FollowLink(ctx context.Context, link Link, out any) error
}

// NextPage fetches the page after collection, or ErrNoMoreItems.
func NextPage[T any](ctx context.Context, follower LinkFollower, collection *ResourceCollection[T]) (*ResourceCollection[T], error) {
	if !collection.HasNext() {
		return nil, ErrNoMoreItems
	}

	var next ResourceCollection[T]

	err := follower.FollowLink(ctx, *collection.Links.Next, &next)
	if err != nil {
		return nil, fmt.Errorf("fetching next page: %w", err)
	}

	return &next, nil
}

// NextSeekPage fetches the page after a seek based collection, or ErrNoMoreItems.
func NextSeekPage[T any](ctx context.Context, follower LinkFollower, collection *SeekBasedResourceCollection[T]) (*SeekBasedResourceCollection[T], error) {
	if collection == nil || !collection.HasNext() {
		return nil, ErrNoMoreItems
	}

	var next SeekBasedResourceCollection[T]

	err := follower.FollowLink(ctx, *collection.Links.Next, &next)
	if err != nil {
		return nil, fmt.Errorf("fetching next page: %w", err)
	}

	return &next, nil
}
