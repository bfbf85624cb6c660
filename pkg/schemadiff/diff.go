package schemadiff

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/snowdiff/pkg/compare"
	"github.com/pseudomuto/snowdiff/pkg/schema"
)

// ErrMissingSourceDDL is returned when the source schema lists an object but has no DDL for it.
// This is an internal error; it cannot be caused by input that Extract accepted.
var ErrMissingSourceDDL = errors.New("source object has no DDL")

type (
	// Item describes one object that is missing from the target or differs from it.
	Item struct {
		// Object is the identity of the table or view.
		Object schema.ObjectID `json:"object" yaml:"object"`

		// Diff is the line diff from the target DDL to the source DDL. Every line is
		// prefixed with "-" (only in target), "+" (only in source) or " " (both).
		Diff string `json:"diff" yaml:"diff"`

		// Source is the source DDL.
		Source string `json:"-" yaml:"-"`

		// Target is the target DDL, empty when the target does not define Object.
		Target string `json:"-" yaml:"-"`
	}

	// Option customizes Diff and Compare.
	Option func(*options)

	options struct {
		owner   func(schema.ColumnID) schema.ObjectID
		extract []schema.Option
	}
)

// WithSchemaOptions sets the options Compare and CompareAll pass to schema.Extract for both sides.
// Diff ignores them.
func WithSchemaOptions(opts ...schema.Option) Option {
	return func(o *options) {
		o.extract = append(o.extract, opts...)
	}
}

// WithFirstSegmentOwner attributes a missing column to the text of its identity before the
// first dot, instead of to the object that declares it. For multi-part names this is only the
// database (a.b.t.x-INT belongs to "a"), which usually names no object and makes Diff fail with
// ErrMissingSourceDDL. It exists for output compatibility with tools that derive owners this way.
func WithFirstSegmentOwner() Option {
	return func(o *options) {
		o.owner = firstSegment
	}
}

func declaringObject(c schema.ColumnID) schema.ObjectID {
	return c.Object
}

func firstSegment(c schema.ColumnID) schema.ObjectID {
	id, _, _ := strings.Cut(c.String(), ".")
	return schema.ObjectID(id)
}

func newOptions(opts []Option) options {
	o := options{owner: declaringObject}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// MissingObjects returns the sorted, duplicate free identities of the objects that are
// defined in source and either not defined in target or owning a column identity that target
// does not have.
func MissingObjects(source, target *schema.Schema, opts ...Option) []schema.ObjectID {
	o := newOptions(opts)

	return compare.SortedUnion(
		compare.Missing(source.Objects.Values(), target.Objects),
		compare.MissingBy(source.Columns.Values(), target.Columns, o.owner),
	)
}

// Diff returns one Item per object reported by MissingObjects, in the same order. An Item is
// produced even when the DDL text of both sides is identical.
//
// Example:
//
//	source, _ := schema.Extract("CREATE TABLE a.t (x INT, y VARCHAR(10));")
//	target, _ := schema.Extract("CREATE TABLE a.t (x INT);")
//
//	items, err := schemadiff.Diff(source, target)
//	// items[0].Object == "a.t"
//	// items[0].Diff == "-CREATE TABLE a.t (x INT)\n+CREATE TABLE a.t (x INT, y VARCHAR(10))"
func Diff(source, target *schema.Schema, opts ...Option) ([]Item, error) {
	ids := MissingObjects(source, target, opts...)

	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		sourceDDL, ok := source.DDL(id)
		if !ok {
			return nil, errors.Wrapf(ErrMissingSourceDDL, "object %s", id)
		}

		targetDDL, _ := target.DDL(id)

		items = append(items, Item{
			Object: id,
			Diff:   lineDiff(targetDDL, sourceDDL),
			Source: sourceDDL,
			Target: targetDDL,
		})
	}

	slog.Debug("Compared schemas",
		"source_objects", source.Objects.Len(),
		"target_objects", target.Objects.Len(),
		"differences", len(items),
	)

	return items, nil
}
