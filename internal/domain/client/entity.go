package client

import "time"

// Client is a customer site that field employees visit. A site either has a
// full geocoordinate (latitude and longitude) or none at all.
type Client struct {
	ID        string
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCoordinate reports whether the site has a registered geocoordinate.
func (c Client) HasCoordinate() bool {
	return c.Latitude != nil && c.Longitude != nil
}
