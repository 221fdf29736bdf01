// Package catalog serves the translated strings of the site. Each language
// lives in an embedded JSON file; all files must define the same keys.
package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"latina/shared/locale"
)

//go:embed messages/*.json
var files embed.FS

var (
	ErrUnknownLocale = errors.New("unknown locale")
	ErrMissingKey    = errors.New("missing translation key")
	ErrEmptyKey      = errors.New("empty translation")
	ErrParity        = errors.New("catalogs do not define the same keys")
)

// Catalog is the loaded, immutable content of one language.
type Catalog struct {
	Locale   locale.Locale
	Messages *Messages
	tree     map[string]any
	keys     []string
}

type entry struct {
	once    sync.Once
	catalog *Catalog
	err     error
}

var cache = map[locale.Locale]*entry{}
var cacheMu sync.Mutex

// Load returns the catalog for loc, reading and validating it on first use.
// Catalogs never change at runtime so nothing is ever evicted.
func Load(loc locale.Locale) (*Catalog, error) {
	if _, ok := locale.Parse(loc.String()); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, loc)
	}

	cacheMu.Lock()
	ent, ok := cache[loc]
	if !ok {
		ent = &entry{}
		cache[loc] = ent
	}
	cacheMu.Unlock()

	ent.once.Do(func() {
		ent.catalog, ent.err = read(loc)
		if ent.err != nil {
			log.Error().Err(ent.err).Str("locale", loc.String()).Msg("failed to load catalog")
		}
	})

	return ent.catalog, ent.err
}

// MustLoad is Load for callers that already checked the catalogs at startup.
func MustLoad(loc locale.Locale) *Catalog {
	cat, err := Load(loc)
	if err != nil {
		panic(err)
	}

	return cat
}

// Get looks up keyPath ("reservation.form.name") in the catalog of loc.
func Get(loc locale.Locale, keyPath string) (string, error) {
	cat, err := Load(loc)
	if err != nil {
		return "", err
	}

	return cat.Get(keyPath)
}

// Get looks up a dotted key path. Paths that stop at a group rather than a
// string are reported as missing.
func (c *Catalog) Get(keyPath string) (string, error) {
	var node any = c.tree

	for _, part := range strings.Split(keyPath, ".") {
		group, ok := node.(map[string]any)
		if !ok {
			return "", fmt.Errorf("%w: %s/%s", ErrMissingKey, c.Locale, keyPath)
		}

		node, ok = group[part]
		if !ok {
			return "", fmt.Errorf("%w: %s/%s", ErrMissingKey, c.Locale, keyPath)
		}
	}

	text, ok := node.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrMissingKey, c.Locale, keyPath)
	}

	return text, nil
}

// Keys returns every leaf key path, sorted.
func (c *Catalog) Keys() []string {
	return slices.Clone(c.keys)
}

// CheckParity loads every catalog and verifies each one defines exactly the
// key set of the default language.
func CheckParity() error {
	reference, err := Load(locale.Default)
	if err != nil {
		return err
	}

	var errs []error

	for _, loc := range locale.All() {
		if loc == locale.Default {
			continue
		}

		cat, err := Load(loc)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		missing, extra := diff(reference.keys, cat.keys)
		if len(missing) > 0 || len(extra) > 0 {
			errs = append(errs, fmt.Errorf("%w: %s missing %v, extra %v", ErrParity, loc, missing, extra))
		}
	}

	return errors.Join(errs...)
}

// Format replaces {name} placeholders in template. Placeholders without a
// value are left untouched.
func Format(template string, values map[string]string) string {
	if len(values) == 0 {
		return template
	}

	pairs := make([]string, 0, len(values)*2)
	for _, key := range slices.Sorted(maps.Keys(values)) {
		pairs = append(pairs, "{"+key+"}", values[key])
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

func read(loc locale.Locale) (*Catalog, error) {
	raw, err := files.ReadFile("messages/" + loc.String() + ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", loc, err)
	}

	tree := map[string]any{}
	if err = json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", loc, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	messages := &Messages{}
	if err = decoder.Decode(messages); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", loc, err)
	}

	if empty := emptyFields(reflect.ValueOf(*messages), ""); len(empty) > 0 {
		return nil, fmt.Errorf("%w: %s %v", ErrEmptyKey, loc, empty)
	}

	keys := []string{}
	collect(tree, "", &keys)
	slices.Sort(keys)

	return &Catalog{
		Locale:   loc,
		Messages: messages,
		tree:     tree,
		keys:     keys,
	}, nil
}

func collect(node map[string]any, prefix string, keys *[]string) {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if group, ok := value.(map[string]any); ok {
			collect(group, path, keys)

			continue
		}

		*keys = append(*keys, path)
	}
}

// emptyFields walks the typed messages and reports the JSON paths of blank
// strings. A key absent from the file decodes to a blank string.
func emptyFields(value reflect.Value, prefix string) []string {
	var empty []string

	for i := range value.NumField() {
		field := value.Type().Field(i)
		name := strings.Split(field.Tag.Get("json"), ",")[0]

		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		switch value.Field(i).Kind() {
		case reflect.Struct:
			empty = append(empty, emptyFields(value.Field(i), path)...)
		case reflect.String:
			if strings.TrimSpace(value.Field(i).String()) == "" {
				empty = append(empty, path)
			}
		default:
		}
	}

	return empty
}

func diff(want, got []string) (missing, extra []string) {
	for _, key := range want {
		if _, found := slices.BinarySearch(got, key); !found {
			missing = append(missing, key)
		}
	}

	for _, key := range got {
		if _, found := slices.BinarySearch(want, key); !found {
			extra = append(extra, key)
		}
	}

	return missing, extra
}
