package studiasdk

import "context"

const msgCampusesFailed = "Error al cargar sedes"

// Campuses lists the active university campuses ("sedes").
func (c *Client) Campuses(ctx context.Context) (*Page[Campus], error) {
	var result Page[Campus]
	if err := c.getJSON(ctx, "/sedes/", nil, &result, msgCampusesFailed); err != nil {
		return nil, err
	}
	return &result, nil
}
