package curve

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libeasygo/pathutils"
	"gopkg.in/yaml.v3"
)

const fileExt = ".yaml"

// NewFileStorage keeps one yaml document per curve under root.
func NewFileStorage(root string) (Storage, error) {
	if err := pathutils.MustDirExists(root); err != nil {
		return nil, err
	}

	return &fileStorage{
		root: root,
	}, nil
}

type fileStorage struct {
	lock sync.RWMutex
	root string
}

func (stg *fileStorage) fileNameByName(name string) string {
	return filepath.Join(stg.root, name+fileExt)
}

func (stg *fileStorage) Load(name string) (c *Curve, err error) {
	if err = CheckName(name); err != nil {
		return
	}

	stg.lock.RLock()
	d, err := os.ReadFile(stg.fileNameByName(name))
	stg.lock.RUnlock()

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = commerr.ErrNotFound
		}

		return
	}

	c = &Curve{}

	err = yaml.Unmarshal(d, c)

	return
}

func (stg *fileStorage) Save(c *Curve) (err error) {
	if err = CheckName(c.Name); err != nil {
		return
	}

	d, err := yaml.Marshal(c)
	if err != nil {
		return
	}

	stg.lock.Lock()
	defer stg.lock.Unlock()

	err = os.WriteFile(stg.fileNameByName(c.Name), d, 0600)

	return
}

func (stg *fileStorage) Delete(name string) error {
	if err := CheckName(name); err != nil {
		return err
	}

	stg.lock.Lock()
	defer stg.lock.Unlock()

	err := os.Remove(stg.fileNameByName(name))
	if errors.Is(err, fs.ErrNotExist) {
		return commerr.ErrNotFound
	}

	return err
}

func (stg *fileStorage) List() (names []string, err error) {
	stg.lock.RLock()
	entries, err := os.ReadDir(stg.root)
	stg.lock.RUnlock()

	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}

		names = append(names, strings.TrimSuffix(entry.Name(), fileExt))
	}

	sort.Strings(names)

	return
}
