package studiasdk

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const (
	msgEnrollmentsFailed = "Error al cargar inscripciones"
	msgCancelFailed      = "Error al cancelar la inscripción"
)

// Enrollments lists the authenticated student's enrollments. Pages are
// 1-based.
func (c *Client) Enrollments(ctx context.Context, page int) (*Page[Enrollment], error) {
	query := url.Values{"page": {strconv.Itoa(pageOrFirst(page))}}

	var result Page[Enrollment]
	if err := c.getJSON(ctx, "/inscripciones/", query, &result, msgEnrollmentsFailed); err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelEnrollment cancels an active enrollment.
func (c *Client) CancelEnrollment(ctx context.Context, enrollmentID int) error {
	var reply struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}

	path := fmt.Sprintf("/inscripciones/%d/cancelar/", enrollmentID)
	if err := c.postJSON(ctx, path, nil, &reply, msgCancelFailed); err != nil {
		return err
	}
	if !reply.Success {
		msg := reply.Message
		if msg == "" {
			msg = msgCancelFailed
		}
		return &APIError{Message: msg}
	}
	return nil
}
