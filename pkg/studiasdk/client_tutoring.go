package studiasdk

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const (
	msgTutoringListFailed = "Error al cargar ayudantías"
	msgTutoringGetFailed  = "Error al cargar ayudantía"
	msgEnrollFailed       = "Error al inscribirse en la ayudantía"
)

// TutoringSessions lists tutoring sessions, optionally filtered by subject
// (pass 0 for all). Pages are 1-based.
func (c *Client) TutoringSessions(ctx context.Context, subjectID, page int) (*Page[TutoringSession], error) {
	query := url.Values{"page": {strconv.Itoa(pageOrFirst(page))}}
	if subjectID > 0 {
		query.Set("asignatura_id", strconv.Itoa(subjectID))
	}

	var result Page[TutoringSession]
	if err := c.getJSON(ctx, "/ayudantias/", query, &result, msgTutoringListFailed); err != nil {
		return nil, err
	}
	return &result, nil
}

// TutoringSession fetches one session by id.
func (c *Client) TutoringSession(ctx context.Context, id int) (*TutoringSession, error) {
	var session TutoringSession
	path := fmt.Sprintf("/ayudantias/%d/", id)
	if err := c.getJSON(ctx, path, nil, &session, msgTutoringGetFailed); err != nil {
		return nil, err
	}
	return &session, nil
}

// Enroll registers the authenticated student in a tutoring session and
// returns the created enrollment.
func (c *Client) Enroll(ctx context.Context, sessionID int) (*Enrollment, error) {
	var reply struct {
		Success bool       `json:"success"`
		Message string     `json:"message"`
		Data    Enrollment `json:"data"`
	}

	path := fmt.Sprintf("/ayudantias/%d/inscribirse/", sessionID)
	if err := c.postJSON(ctx, path, nil, &reply, msgEnrollFailed); err != nil {
		return nil, err
	}
	if !reply.Success {
		msg := reply.Message
		if msg == "" {
			msg = msgEnrollFailed
		}
		return nil, &APIError{Message: msg}
	}
	return &reply.Data, nil
}
