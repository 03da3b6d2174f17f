package sharedptr_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	sharedptr "github.com/dillonhicks/shared-ptr"
)

type endpoint struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

func TestMarshalJSON_EncodesAsPayload(t *testing.T) {
	t.Parallel()

	cfg := endpoint{Host: "localhost", Port: 8080}

	want, err := json.Marshal(cfg)
	require.NoError(t, err)

	for name, got := range map[string]func() ([]byte, error){
		"cell":   func() ([]byte, error) { return json.Marshal(sharedptr.NewCell(cfg)) },
		"mutex":  func() ([]byte, error) { return json.Marshal(sharedptr.NewMutex(cfg)) },
		"rwlock": func() ([]byte, error) { return json.Marshal(sharedptr.NewRWLock(cfg)) },
	} {
		data, err := got()
		require.NoError(t, err, name)
		require.JSONEq(t, string(want), string(data), name)
	}
}

func TestUnmarshalJSON_ConstructsFreshStorage(t *testing.T) {
	t.Parallel()

	original := sharedptr.NewMutex(endpoint{Host: "a", Port: 1})
	alias := original.Clone()

	var decoded sharedptr.Mutex[endpoint]
	require.NoError(t, json.Unmarshal([]byte(`{"host":"b","port":2}`), &decoded))

	require.Equal(t, endpoint{Host: "b", Port: 2}, decoded.Get())

	// Decoding into a clone detaches it; the original storage is
	// untouched.
	require.NoError(t, json.Unmarshal([]byte(`{"host":"c","port":3}`), &alias))
	require.Equal(t, endpoint{Host: "a", Port: 1}, original.Get())
	require.Equal(t, endpoint{Host: "c", Port: 3}, alias.Get())
}

func TestJSON_HandleInsideStruct(t *testing.T) {
	t.Parallel()

	type state struct {
		Name     string                           `json:"name"`
		Counters sharedptr.RWLock[map[string]int] `json:"counters"`
	}

	in := state{
		Name:     "app",
		Counters: sharedptr.NewRWLock(map[string]int{"hits": 3}),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out state
	require.NoError(t, json.Unmarshal(data, &out))

	require.Equal(t, "app", out.Name)
	require.Equal(t, map[string]int{"hits": 3}, out.Counters.Get())
}

func TestUnmarshalJSON_InvalidPayload(t *testing.T) {
	t.Parallel()

	var c sharedptr.Cell[int]

	require.Error(t, json.Unmarshal([]byte(`"not a number"`), &c))
}
