package domain

import "github.com/google/uuid"

// The identifier types are encoded as canonical UUID strings in JSON and
// River job arguments.

func (id IntegrationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *IntegrationID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id EndpointID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *EndpointID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id DeliveryID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *DeliveryID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id PostingID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id *PostingID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// ParseID parses a UUID string into one of the identifier types.
func ParseID[T ~[16]byte](s string) (T, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return T{}, err
	}

	return T(id), nil
}
