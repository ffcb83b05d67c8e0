package registry

import (
	"fmt"
	"time"

	"jetdesk/internal/shared/biztime"
)

// Client is a customer that reports problems. Clients are append-only
// reference data: created once, never updated or deleted.
type Client struct {
	id              uint
	name            string
	contactPhone    string
	email           string
	company         string
	serviceContract bool
	location        string
	createdAt       time.Time
}

func NewClient(
	name string,
	contactPhone string,
	email string,
	company string,
	serviceContract bool,
	location string,
) (*Client, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(contactPhone) == 0 {
		return nil, fmt.Errorf("contact phone is required")
	}

	return &Client{
		name:            name,
		contactPhone:    contactPhone,
		email:           email,
		company:         company,
		serviceContract: serviceContract,
		location:        location,
		createdAt:       biztime.NowUTC(),
	}, nil
}

func ReconstructClient(
	id uint,
	name string,
	contactPhone string,
	email string,
	company string,
	serviceContract bool,
	location string,
	createdAt time.Time,
) (*Client, error) {
	if id == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Client{
		id:              id,
		name:            name,
		contactPhone:    contactPhone,
		email:           email,
		company:         company,
		serviceContract: serviceContract,
		location:        location,
		createdAt:       createdAt,
	}, nil
}

func (c *Client) ID() uint {
	return c.id
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) ContactPhone() string {
	return c.contactPhone
}

func (c *Client) Email() string {
	return c.email
}

func (c *Client) Company() string {
	return c.company
}

func (c *Client) ServiceContract() bool {
	return c.serviceContract
}

func (c *Client) Location() string {
	return c.location
}

func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Client) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("client ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.id = id
	return nil
}
