package idwrap

import (
	"database/sql/driver"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDWrap wraps a ULID so models carry one identity type that works as a
// sql driver value and as text in snapshot documents.
type IDWrap struct {
	ulid ulid.ULID
}

func New(id ulid.ULID) IDWrap {
	return IDWrap{ulid: id}
}

func NewNow() IDWrap {
	return IDWrap{ulid: ulid.Make()}
}

func NewText(ulidString string) (IDWrap, error) {
	id, err := ulid.Parse(ulidString)
	if err != nil {
		return IDWrap{}, err
	}
	return IDWrap{ulid: id}, nil
}

func NewTextMust(ulidString string) IDWrap {
	id, err := ulid.Parse(ulidString)
	if err != nil {
		panic(err)
	}
	return IDWrap{ulid: id}
}

func NewFromBytes(data []byte) (IDWrap, error) {
	id := ulid.ULID{}
	err := id.UnmarshalBinary(data)
	return IDWrap{ulid: id}, err
}

func NewFromBytesMust(data []byte) IDWrap {
	id, err := NewFromBytes(data)
	if err != nil {
		panic(err)
	}
	return id
}

func (u IDWrap) String() string {
	return u.ulid.String()
}

func (u IDWrap) Bytes() []byte {
	return u.ulid[:]
}

func (u IDWrap) Compare(id IDWrap) int {
	return u.ulid.Compare(id.ulid)
}

// IsZero reports whether the wrapper holds the zero ULID, the state of
// variables that were never persisted.
func (u IDWrap) IsZero() bool {
	return u.ulid == (ulid.ULID{})
}

func (u IDWrap) Time() time.Time {
	return time.UnixMilli(int64(u.ulid.Time()))
}

// SQL driver value
func (u IDWrap) Value() (driver.Value, error) {
	return u.ulid.Value()
}

func (u *IDWrap) Scan(value interface{}) error {
	return u.ulid.UnmarshalBinary(value.([]byte))
}

// Text marshaling, used by the snapshot codecs.
func (u IDWrap) MarshalText() ([]byte, error) {
	return u.ulid.MarshalText()
}

func (u *IDWrap) UnmarshalText(data []byte) error {
	return u.ulid.UnmarshalText(data)
}
