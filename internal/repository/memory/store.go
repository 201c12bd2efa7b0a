package memory

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
)

type entry struct {
	seq int64
	doc map[string]any
}

// Store реализует repository.Store в памяти процесса
type Store struct {
	mu    sync.RWMutex
	seq   int64
	colls map[repository.Collection]map[string]*entry
}

// NewStore создает пустое хранилище со всеми известными коллекциями
func NewStore() *Store {
	colls := make(map[repository.Collection]map[string]*entry, len(repository.Collections))
	for _, coll := range repository.Collections {
		colls[coll] = make(map[string]*entry)
	}
	return &Store{colls: colls}
}

func (s *Store) collection(coll repository.Collection) (map[string]*entry, error) {
	docs, ok := s.colls[coll]
	if !ok {
		return nil, errors.Wrapf(repository.ErrUnknownCollection, "collection %q", coll)
	}
	return docs, nil
}

func (s *Store) FindByID(_ context.Context, coll repository.Collection, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs, err := s.collection(coll)
	if err != nil {
		return nil, err
	}

	e, ok := docs[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}

	return encode(e.doc)
}

func (s *Store) FindAll(_ context.Context, coll repository.Collection) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs, err := s.collection(coll)
	if err != nil {
		return nil, err
	}

	ordered := make([]*entry, 0, len(docs))
	for _, e := range docs {
		ordered = append(ordered, e)
	}
	sortBySeq(ordered)

	out := make([][]byte, 0, len(ordered))
	for _, e := range ordered {
		raw, err := encode(e.doc)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}

	return out, nil
}

func (s *Store) Insert(_ context.Context, coll repository.Collection, id string, doc []byte) (string, error) {
	var decoded map[string]any
	if err := json.Unmarshal(doc, &decoded); err != nil {
		return "", errors.Wrapf(err, "decode %s/%s", coll, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.collection(coll)
	if err != nil {
		return "", err
	}
	if _, exists := docs[id]; exists {
		return "", repository.ErrDuplicateID
	}

	s.seq++
	docs[id] = &entry{seq: s.seq, doc: decoded}

	return id, nil
}

func (s *Store) SetFields(_ context.Context, coll repository.Collection, id string, fields map[string]any) (repository.UpdateResult, error) {
	normalized, err := normalize(fields)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	patch, _ := normalized.(map[string]any)

	return s.mutate(coll, id, func(doc map[string]any) bool {
		changed := false
		for k, v := range patch {
			if !equalJSON(doc[k], v) {
				doc[k] = v
				changed = true
			}
		}
		return changed
	})
}

func (s *Store) PushElement(_ context.Context, coll repository.Collection, id, arrayField string, element any) (repository.UpdateResult, error) {
	elem, err := normalize(element)
	if err != nil {
		return repository.UpdateResult{}, err
	}

	return s.mutate(coll, id, func(doc map[string]any) bool {
		arr, _ := doc[arrayField].([]any)
		doc[arrayField] = append(arr, elem)
		return true
	})
}

func (s *Store) PullElement(_ context.Context, coll repository.Collection, id, arrayField string, match repository.Match) (repository.UpdateResult, error) {
	return s.mutate(coll, id, func(doc map[string]any) bool {
		arr, _ := doc[arrayField].([]any)
		kept := make([]any, 0, len(arr))
		for _, item := range arr {
			if obj, ok := item.(map[string]any); ok {
				if v, ok := obj[match.Key].(string); ok && v == match.Value {
					continue
				}
			}
			kept = append(kept, item)
		}
		if len(kept) == len(arr) {
			return false
		}
		doc[arrayField] = kept
		return true
	})
}

func (s *Store) Delete(_ context.Context, coll repository.Collection, id string) (repository.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.collection(coll)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	if _, ok := docs[id]; !ok {
		return repository.UpdateResult{}, nil
	}

	delete(docs, id)
	return repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

// mutate применяет fn к документу под блокировкой; fn сообщает, изменился ли документ
func (s *Store) mutate(coll repository.Collection, id string, fn func(doc map[string]any) bool) (repository.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.collection(coll)
	if err != nil {
		return repository.UpdateResult{}, err
	}

	e, ok := docs[id]
	if !ok {
		return repository.UpdateResult{}, nil
	}

	result := repository.UpdateResult{Matched: 1}
	if fn(e.doc) {
		result.Modified = 1
	}

	return result, nil
}
