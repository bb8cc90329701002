package area

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	log "gopkg.in/inconshreveable/log15.v2"
	"gopkg.in/yaml.v3"
)

// Definition is the on-disk form of a world. Slices are used everywhere so
// that exits and items keep the order they are written in.
type Definition struct {
	Name       string    `toml:"name" yaml:"name"`
	Intro      string    `toml:"intro" yaml:"intro"`
	Start      string    `toml:"start" yaml:"start"`
	DeathImage string    `toml:"death_image" yaml:"death_image"`
	Rooms      []RoomDef `toml:"rooms" yaml:"rooms"`
}

type RoomDef struct {
	ID         string    `toml:"id" yaml:"id"`
	Name       string    `toml:"name" yaml:"name"`
	Image      string    `toml:"image" yaml:"image"`
	Exits      []ExitDef `toml:"exits" yaml:"exits"`
	Items      []ItemDef `toml:"items" yaml:"items"`
	Grabbables []string  `toml:"grabbables" yaml:"grabbables"`
}

// ExitDef leads either to the room with id To or, when Death is set, to the
// death sentinel.
type ExitDef struct {
	Direction string `toml:"direction" yaml:"direction"`
	To        string `toml:"to" yaml:"to"`
	Death     bool   `toml:"death" yaml:"death"`
}

type ItemDef struct {
	Label       string `toml:"label" yaml:"label"`
	Description string `toml:"description" yaml:"description"`
}

// Build creates a fresh World from the definition. Every call returns rooms
// with their own grabbables, so sessions never share mutable state.
func (d Definition) Build() (*World, error) {
	if len(d.Rooms) == 0 {
		return nil, fmt.Errorf("%s: %w", d.Name, ErrNoRooms)
	}

	w := NewWorld(d.Name)
	w.Intro = d.Intro
	if d.DeathImage != "" {
		w.DeathImage = d.DeathImage
	}

	ids := make(map[string]Location, len(d.Rooms))
	for _, rd := range d.Rooms {
		if _, ok := ids[rd.ID]; ok {
			return nil, fmt.Errorf("%s: room %q: %w", d.Name, rd.ID, ErrDuplicateRoom)
		}
		ids[rd.ID] = w.AddRoom(rd.Name, rd.Image)
	}

	for _, rd := range d.Rooms {
		r := w.Room(ids[rd.ID])
		for _, ed := range rd.Exits {
			switch {
			case ed.Death && ed.To == "":
				r.AddExit(ed.Direction, Death)
			case !ed.Death && ed.To != "":
				to, ok := ids[ed.To]
				if !ok {
					return nil, fmt.Errorf("%s: room %q exit %q to %q: %w", d.Name, rd.ID, ed.Direction, ed.To, ErrUnknownRoom)
				}
				r.AddExit(ed.Direction, to)
			default:
				return nil, fmt.Errorf("%s: room %q exit %q: %w", d.Name, rd.ID, ed.Direction, ErrBadExit)
			}
		}
		for _, id := range rd.Items {
			r.AddItem(id.Label, id.Description)
		}
		for _, g := range rd.Grabbables {
			r.AddGrabbable(g)
		}
	}

	if d.Start != "" {
		start, ok := ids[d.Start]
		if !ok {
			return nil, fmt.Errorf("%s: start %q: %w", d.Name, d.Start, ErrUnknownRoom)
		}
		if err := w.SetStart(start); err != nil {
			return nil, err
		}
	}

	return w, w.Validate()
}

// LoadDefinition reads a world definition from a .toml, .yaml or .yml file.
func LoadDefinition(path string) (Definition, error) {
	var d Definition

	fileContent, err := ioutil.ReadFile(path)
	if err != nil {
		return d, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(fileContent), &d); err != nil {
			return d, fmt.Errorf("%s could not be unmarshaled: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileContent, &d); err != nil {
			return d, fmt.Errorf("%s could not be unmarshaled: %w", path, err)
		}
	default:
		return d, fmt.Errorf("%s: unsupported world format", path)
	}

	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

// LoadDir loads every world definition under dir, keyed by name.
func LoadDir(dir string) (map[string]Definition, error) {
	log.Info("Loading worlds ...")

	worlds := make(map[string]Definition)
	walker := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml", ".yaml", ".yml":
		default:
			return nil
		}

		d, err := LoadDefinition(path)
		if err != nil {
			log.Warn(fmt.Sprintf("%s could not be loaded: %v", path, err))
			return err
		}
		if _, err := d.Build(); err != nil {
			return err
		}

		log.Info(fmt.Sprintf("Loaded world %q", d.Name))
		worlds[d.Name] = d
		return nil
	}

	if err := filepath.Walk(dir, walker); err != nil {
		return nil, err
	}
	return worlds, nil
}

// EncodeTOML writes the definition in the format LoadDefinition reads back.
func (d Definition) EncodeTOML() ([]byte, error) {
	data := &bytes.Buffer{}
	if err := toml.NewEncoder(data).Encode(d); err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}
