package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Prefijos de claves
const (
	KeyPage    = "page:"
	KeyPNG     = "png:"
	KeySummary = "summary:"
)

// Store guarda bytes renderizados con expiración. Lo implementan el
// caché en memoria y Redis.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Purge(ctx context.Context, prefix string) error
	Close() error
}

// Fetch retorna el valor cacheado o lo genera con render y lo guarda.
// hit indica si vino del caché.
func Fetch(ctx context.Context, s Store, key string, ttl time.Duration, render func() ([]byte, error)) (data []byte, hit bool, err error) {
	if cached, ok, lerr := s.Load(ctx, key); lerr == nil && ok {
		return cached, true, nil
	}
	data, err = render()
	if err != nil {
		return nil, false, err
	}
	// un error al guardar no invalida lo ya generado
	_ = s.Save(ctx, key, data, ttl)
	return data, false, nil
}

// Marshal serializa y guarda en caché
func Marshal(ctx context.Context, s Store, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Save(ctx, key, data, ttl)
}

// Unmarshal obtiene y deserializa del caché
func Unmarshal(ctx context.Context, s Store, key string, target interface{}) (bool, error) {
	data, found, err := s.Load(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return false, err
	}
	return true, nil
}
