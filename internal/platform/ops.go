package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/tagnote/pkg/adapters/fs"
	"github.com/aretw0/tagnote/pkg/adapters/memory"
	"github.com/aretw0/tagnote/pkg/core"
)

// Init builds and initializes the repository selected by opts.
// The uri is adapter-specific: a directory for "fs", ignored for "memory".
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := apply(opts)

	if o.repository != nil {
		return o.repository, nil
	}

	var repo core.Repository
	switch o.adapter {
	case AdapterFS:
		path := ResolveVaultPath(uri, o.forceTemp)
		if o.forceTemp && o.logger != nil {
			o.logger.Warn("running in temporary vault", "original_path", uri, "resolved_path", path)
		}
		repo = fs.NewRepository(fs.Config{
			Path:         path,
			MustExist:    o.mustExist,
			ReadOnly:     o.readOnly,
			Logger:       o.logger,
			SystemDir:    o.systemDir,
			ErrorHandler: o.errorHandler,
		})
	case AdapterMemory:
		repo = memory.NewRepository()
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

// New creates a Service on top of the repository selected by opts.
//
//	svc, err := tagnote.New("./notes", tagnote.WithLogger(logger))
func New(uri string, opts ...Option) (*core.Service, error) {
	repo, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}
	o := apply(opts)
	return core.NewService(repo, o.logger), nil
}
