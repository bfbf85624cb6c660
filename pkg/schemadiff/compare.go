package schemadiff

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/pseudomuto/snowdiff/pkg/schema"
	"golang.org/x/sync/errgroup"
)

type (
	// Pair is a named source and target DDL input.
	Pair struct {
		Name   string
		Source string
		Target string
	}

	// Result holds the differences found for one Pair.
	Result struct {
		Name  string `json:"name" yaml:"name"`
		Items []Item `json:"items" yaml:"items"`
	}
)

// Compare extracts both inputs concurrently and diffs them. A parse error names the side
// that failed. Options given with WithSchemaOptions apply to both extractions, the rest to Diff.
func Compare(ctx context.Context, source, target string, opts ...Option) ([]Item, error) {
	var (
		extractOpts = newOptions(opts).extract
		src         *schema.Schema
		tgt         *schema.Schema
	)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() (err error) {
		src, err = extract(ctx, "source", source, extractOpts)
		return err
	})

	eg.Go(func() (err error) {
		tgt, err = extract(ctx, "target", target, extractOpts)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return Diff(src, tgt, opts...)
}

// CompareAll runs Compare for every pair, at most GOMAXPROCS at a time. Results are returned in
// the order of pairs. The first failure cancels the pairs that have not started yet.
func CompareAll(ctx context.Context, pairs []Pair, opts ...Option) ([]Result, error) {
	results := make([]Result, len(pairs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, pair := range pairs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			items, err := Compare(ctx, pair.Source, pair.Target, opts...)
			if err != nil {
				return errors.Wrapf(err, "comparison %s", pair.Name)
			}

			results[i] = Result{Name: pair.Name, Items: items}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func extract(ctx context.Context, side, sql string, opts []schema.Option) (*schema.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := schema.Extract(sql, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to extract %s schema", side)
	}

	return s, nil
}
