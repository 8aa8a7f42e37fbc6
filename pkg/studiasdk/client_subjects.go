package studiasdk

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const (
	msgSubjectsFailed = "Error al cargar asignaturas"
	msgSubjectFailed  = "Error al cargar asignatura"
)

// Subjects lists subjects with available tutoring sessions. Pages are
// 1-based; pass 1 for the first page.
func (c *Client) Subjects(ctx context.Context, page int) (*Page[Subject], error) {
	query := url.Values{"page": {strconv.Itoa(pageOrFirst(page))}}

	var result Page[Subject]
	if err := c.getJSON(ctx, "/asignaturas/", query, &result, msgSubjectsFailed); err != nil {
		return nil, err
	}
	return &result, nil
}

// Subject fetches one subject by id.
func (c *Client) Subject(ctx context.Context, id int) (*Subject, error) {
	var subject Subject
	path := fmt.Sprintf("/asignaturas/%d/", id)
	if err := c.getJSON(ctx, path, nil, &subject, msgSubjectFailed); err != nil {
		return nil, err
	}
	return &subject, nil
}

func pageOrFirst(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
