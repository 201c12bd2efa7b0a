package memory

import (
	"bytes"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

// json сортирует ключи объектов, чтобы сравнение закодированных значений было стабильным
var json = sonic.ConfigStd

func encode(doc map[string]any) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "encode document")
	}
	return raw, nil
}

// normalize приводит значение к виду, в котором оно хранится после JSON-декодирования
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode value")
	}

	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "decode value")
	}

	return out, nil
}

func equalJSON(a, b any) bool {
	ra, errA := json.Marshal(a)
	rb, errB := json.Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(ra, rb)
}

func sortBySeq(entries []*entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})
}
