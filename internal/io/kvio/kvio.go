package kvio

import (
	"encoding/binary"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v2"
	"github.com/gnames/gnsys"
	"github.com/gnames/objgraph/internal/ent/kv"
)

type kvio struct {
	dir   string
	kv    *badger.DB
	count int
}

// New returns a set of identities kept in a badger key-value store.
// The directory is created if needed and cleaned from old data.
func New(dir string) (kv.Set, error) {
	res := kvio{
		dir: dir,
	}

	err := gnsys.MakeDir(dir)
	if err != nil {
		slog.Error("Cannot create directory", "error", err, "dir", dir)
		return nil, err
	}

	err = gnsys.CleanDir(dir)
	if err != nil {
		slog.Error("Cannot reset KeyValue", "error", err, "dir", dir)
		return nil, err
	}

	return &res, err
}

// Open opens a key-value store.
func (k *kvio) Open() error {
	if k.kv != nil {
		slog.Warn("key-value store is not nil")
	}
	options := badger.DefaultOptions(k.dir)
	options.Logger = nil

	bdb, err := badger.Open(options)
	if err != nil {
		return err
	}
	k.kv = bdb
	return nil
}

// Close closes a key-value store.
func (k *kvio) Close() error {
	if k.kv == nil {
		slog.Warn("key-value store is nil")
		return nil
	}
	err := k.kv.Close()
	k.kv = nil
	return err
}

// Add saves an identity unless it is already in the store.
func (k *kvio) Add(id uint64) (bool, error) {
	if k.kv == nil {
		return false, errors.New("key-value store is not open")
	}
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)

	var added bool
	err := k.kv.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return nil
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		added = true
		return txn.Set(key, []byte{1})
	})
	if err != nil {
		return false, err
	}
	if added {
		k.count++
	}
	return added, nil
}

// Len returns the number of identities added since creation.
func (k *kvio) Len() int {
	return k.count
}
