package toyfs

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/go-toyfs/toyfs/internal/arena"
	"github.com/go-toyfs/toyfs/internal/record"
)

// Filesystem is an in-memory toyfs image: the arena of inodes and data
// blocks plus the root inode index needed to resolve paths against it.
// A zero Filesystem is not usable; build one with New or Load.
type Filesystem struct {
	imageID  uuid.UUID
	geometry record.Geometry
	arena    *arena.Arena
	root     int
	log      *logrus.Entry
}

// New builds a fresh, empty filesystem with the given geometry: a single
// root directory inode named "/" and every other slot free.
func New(g record.Geometry) (*Filesystem, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("toyfs: %w", err)
	}

	a := arena.New(g)
	root, err := a.AllocInode()
	if err != nil {
		// Cannot happen for NumBlocks >= 1, which Validate already requires.
		return nil, fmt.Errorf("toyfs: allocating root inode: %w", err)
	}
	a.Inodes[root] = record.Inode{
		Type:         record.TypeDirectory,
		Name:         "/",
		DirectBlocks: freeDirectBlocks(g),
		Parent:       record.NoEntry,
	}

	fsys := &Filesystem{
		imageID:  uuid.New(),
		geometry: g,
		arena:    a,
		root:     root,
		log:      newLogger(),
	}
	fsys.log.WithFields(logrus.Fields{
		"image_id":   fsys.imageID,
		"num_blocks": g.NumBlocks,
	}).Debug("filesystem created")
	return fsys, nil
}

func freeDirectBlocks(g record.Geometry) []int32 {
	db := make([]int32, g.DirectBlocks)
	for i := range db {
		db[i] = record.NoEntry
	}
	return db
}

// newLogger returns the base structured logger every Filesystem operation
// logs through, matching the teacher's plain logrus.New() use (no custom
// formatter or hook registration) rather than a package-level singleton.
func newLogger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l.WithField("component", "toyfs")
}

// ImageID returns the UUID stamped into the superblock at creation time.
func (fsys *Filesystem) ImageID() uuid.UUID {
	return fsys.imageID
}

// Geometry returns the fixed capacities this filesystem was built with.
func (fsys *Filesystem) Geometry() record.Geometry {
	return fsys.geometry
}

// FreeBlocks reports how many of the N shared inode/data-block tickets are
// currently unused.
func (fsys *Filesystem) FreeBlocks() uint32 {
	return fsys.arena.FreeBlocks()
}

// SetLogLevel adjusts the verbosity of operation logging; the default is
// logrus.WarnLevel.
func (fsys *Filesystem) SetLogLevel(level logrus.Level) {
	fsys.log.Logger.SetLevel(level)
}
