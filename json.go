package sharedptr

import "encoding/json"

// JSON support mirrors the payload: a handle marshals as its payload
// would, and unmarshaling constructs fresh storage around the decoded
// value. Decoding into an existing handle therefore detaches it from any
// clones; the old storage is untouched.

var (
	_ json.Marshaler   = Cell[int]{}
	_ json.Unmarshaler = (*Cell[int])(nil)
	_ json.Marshaler   = Mutex[int]{}
	_ json.Unmarshaler = (*Mutex[int])(nil)
	_ json.Marshaler   = RWLock[int]{}
	_ json.Unmarshaler = (*RWLock[int])(nil)
)

// MarshalJSON encodes the payload under a read guard.
func (c Cell[T]) MarshalJSON() ([]byte, error) {
	g := c.Read()
	defer g.Release()

	return json.Marshal(g.Get())
}

// UnmarshalJSON decodes data into fresh storage and points the handle at
// it.
func (c *Cell[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = NewCell(v)

	return nil
}

// MarshalJSON encodes the payload under the lock.
func (m Mutex[T]) MarshalJSON() ([]byte, error) {
	g := m.Read()
	defer g.Release()

	return json.Marshal(g.Get())
}

// UnmarshalJSON decodes data into fresh storage and points the handle at
// it.
func (m *Mutex[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = NewMutex(v)

	return nil
}

// MarshalJSON encodes the payload under a shared lock.
func (r RWLock[T]) MarshalJSON() ([]byte, error) {
	g := r.Read()
	defer g.Release()

	return json.Marshal(g.Get())
}

// UnmarshalJSON decodes data into fresh storage and points the handle at
// it.
func (r *RWLock[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = NewRWLock(v)

	return nil
}
