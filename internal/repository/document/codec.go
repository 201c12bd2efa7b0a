// Package document implements the player, team and API key records on top of a repository.Store.
package document

import (
	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

func decode[T any](raw []byte) (*T, error) {
	var v T
	if err := sonic.Unmarshal(raw, &v); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}
	return &v, nil
}

func decodeAll[T any](raws [][]byte) ([]*T, error) {
	out := make([]*T, 0, len(raws))
	for _, raw := range raws {
		v, err := decode[T](raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func encode(v any) ([]byte, error) {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode document")
	}
	return raw, nil
}
