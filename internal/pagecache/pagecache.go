// Package pagecache keeps fetched pages in a bbolt database file, so repeated runs do not refetch them.
package pagecache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/alanbriolat/ytmeta/fetch"
)

var Buckets = struct {
	Metadata []byte
	Pages    []byte
}{
	Metadata: []byte("__metadata__"),
	Pages:    []byte("pages"),
}

var MetadataKeys = struct {
	Version []byte
}{
	Version: []byte("version"),
}

const currentVersion = 1

// ErrVersion is returned when opening a cache written by a newer version.
var ErrVersion = errors.New("unsupported page cache version")

type Cache struct {
	db *bbolt.DB
}

// Open opens or creates the cache file at path. Only one process may have it open at a time; Open waits up to
// timeout for another holder to close it, or forever if timeout is zero.
func Open(path string, timeout time.Duration) (_ *Cache, err error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = db.Close()
		}
	}()
	err = db.Update(func(tx *bbolt.Tx) (err error) {
		// Ensure buckets exist
		var metadata *bbolt.Bucket
		if metadata, err = tx.CreateBucketIfNotExists(Buckets.Metadata); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(Buckets.Pages); err != nil {
			return err
		}

		var version int
		if versionBytes := metadata.Get(MetadataKeys.Version); versionBytes == nil {
			version = 0
		} else if err = json.Unmarshal(versionBytes, &version); err != nil {
			return err
		}
		if version > currentVersion {
			return fmt.Errorf("%w: %d", ErrVersion, version)
		}

		if versionBytes, err := json.Marshal(currentVersion); err != nil {
			return err
		} else {
			return metadata.Put(MetadataKeys.Version, versionBytes)
		}
	})
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) Get(url string) (page fetch.Page, ok bool, err error) {
	err = c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(Buckets.Pages).Get([]byte(url))
		if data == nil {
			return nil
		}
		ok = true
		return json.Unmarshal(data, &page)
	})
	if err != nil {
		return fetch.Page{}, false, err
	}
	return page, ok, nil
}

func (c *Cache) Put(page fetch.Page) error {
	if data, err := json.Marshal(page); err != nil {
		return err
	} else {
		return c.db.Update(func(tx *bbolt.Tx) error {
			return tx.Bucket(Buckets.Pages).Put([]byte(page.URL), data)
		})
	}
}

func (c *Cache) Delete(url string) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(Buckets.Pages).Delete([]byte(url))
	})
}

// Prune deletes pages fetched before cutoff, returning how many were removed.
func (c *Cache) Prune(cutoff time.Time) (removed int, err error) {
	err = c.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(Buckets.Pages)
		var stale [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var page fetch.Page
			if err := json.Unmarshal(v, &page); err != nil || page.FetchedAt.Before(cutoff) {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, k := range stale {
			if err := bucket.Delete(k); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	return removed, err
}

// List returns the URLs of every stored page, in key order.
func (c *Cache) List() (urls []string, err error) {
	err = c.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(Buckets.Pages).ForEach(func(k, v []byte) error {
			urls = append(urls, string(k))
			return nil
		})
	})
	return urls, err
}

var _ fetch.Store = (*Cache)(nil)
