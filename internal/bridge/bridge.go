package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gamevault/internal/enrich"
	"gamevault/internal/launch"
	"gamevault/internal/library"
	"gamevault/internal/platform/metrics"

	"github.com/sirupsen/logrus"
)

const (
	OpListGames     = "listGames"
	OpAddGame       = "addGame"
	OpDeleteGame    = "deleteGame"
	OpUpdateGame    = "updateGame"
	OpFetchMetadata = "fetchMetadata"
	OpLaunchGame    = "launchGame"
	OpChooseFile    = "chooseFile"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrBadRequest       = errors.New("bad request")
)

// Library is the subset of the library store reachable from the bridge.
type Library interface {
	List() []library.Game
	Get(id string) (library.Game, error)
	Add(path string) (library.Game, error)
	Update(id string, patch library.Patch) (library.Game, error)
	Remove(id string) error
}

type Enricher interface {
	EnrichName(ctx context.Context, name string) (library.Metadata, error)
}

type Launcher interface {
	Launch(ctx context.Context, path string) error
}

// FilePicker asks the user for one file. ok is false when the dialog was
// dismissed.
type FilePicker interface {
	PickFile(ctx context.Context) (path string, ok bool, err error)
}

type operation func(ctx context.Context, args json.RawMessage) (any, error)

// Bridge exposes a fixed set of named operations over the library, the
// enrichment client and the launcher.
type Bridge struct {
	library  Library
	enricher Enricher
	launcher Launcher
	picker   FilePicker
	log      logrus.FieldLogger
	ops      map[string]operation
}

func New(lib Library, enricher Enricher, launcher Launcher, picker FilePicker, log logrus.FieldLogger) *Bridge {
	b := &Bridge{
		library:  lib,
		enricher: enricher,
		launcher: launcher,
		picker:   picker,
		log:      log,
	}
	b.ops = map[string]operation{
		OpListGames:     b.listGames,
		OpAddGame:       b.addGame,
		OpDeleteGame:    b.deleteGame,
		OpUpdateGame:    b.updateGame,
		OpFetchMetadata: b.fetchMetadata,
		OpLaunchGame:    b.launchGame,
		OpChooseFile:    b.chooseFile,
	}
	return b
}

// Operations returns the operation names in a stable order.
func Operations() []string {
	return []string{
		OpListGames,
		OpAddGame,
		OpDeleteGame,
		OpUpdateGame,
		OpFetchMetadata,
		OpLaunchGame,
		OpChooseFile,
	}
}

// Invoke runs op with its JSON-encoded arguments.
func (b *Bridge) Invoke(ctx context.Context, op string, args json.RawMessage) (any, error) {
	fn, ok := b.ops[op]
	if !ok {
		metrics.RecordBridgeInvocation("unknown", CodeUnknownOperation, 0)
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	start := time.Now()
	result, err := fn(ctx, args)
	elapsed := time.Since(start)

	entry := b.log.WithFields(logrus.Fields{"operation": op, "duration_ms": elapsed.Milliseconds()})
	if err != nil {
		code := ErrorCode(err)
		metrics.RecordBridgeInvocation(op, code, elapsed)
		entry.WithError(err).WithField("code", code).Warn("bridge operation failed")
		return nil, err
	}
	metrics.RecordBridgeInvocation(op, "ok", elapsed)
	entry.Debug("bridge operation completed")
	return result, nil
}

type idArgs struct {
	ID string `json:"id"`
}

type pathArgs struct {
	Path string `json:"path"`
}

type updateArgs struct {
	ID     string        `json:"id"`
	Fields library.Patch `json:"fields"`
}

type fetchMetadataArgs struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type successResult struct {
	Success bool `json:"success"`
}

func (b *Bridge) listGames(_ context.Context, _ json.RawMessage) (any, error) {
	return b.library.List(), nil
}

func (b *Bridge) addGame(_ context.Context, raw json.RawMessage) (any, error) {
	var args pathArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return b.library.Add(args.Path)
}

func (b *Bridge) deleteGame(_ context.Context, raw json.RawMessage) (any, error) {
	var args idArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := requireField("id", args.ID); err != nil {
		return nil, err
	}
	if err := b.library.Remove(args.ID); err != nil {
		return nil, err
	}
	return successResult{Success: true}, nil
}

func (b *Bridge) updateGame(_ context.Context, raw json.RawMessage) (any, error) {
	var args updateArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := requireField("id", args.ID); err != nil {
		return nil, err
	}
	if args.Fields.Name != nil && strings.TrimSpace(*args.Fields.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrBadRequest)
	}
	if args.Fields.Path != nil && strings.TrimSpace(*args.Fields.Path) == "" {
		return nil, fmt.Errorf("%w: path must not be empty", ErrBadRequest)
	}
	return b.library.Update(args.ID, args.Fields)
}

// fetchMetadata enriches the entry by name and stores the result, replacing
// the display name with the official one.
func (b *Bridge) fetchMetadata(ctx context.Context, raw json.RawMessage) (any, error) {
	var args fetchMetadataArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := requireField("id", args.ID); err != nil {
		return nil, err
	}

	g, err := b.library.Get(args.ID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(args.Name)
	if name == "" {
		name = g.Name
	}

	md, err := b.enricher.EnrichName(ctx, name)
	if err != nil {
		return nil, err
	}

	patch := library.Patch{Metadata: &md}
	if md.Name != "" {
		patch.Name = &md.Name
	}
	return b.library.Update(g.ID, patch)
}

// launchGame only opens paths that are registered in the library.
func (b *Bridge) launchGame(ctx context.Context, raw json.RawMessage) (any, error) {
	var args pathArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := requireField("path", args.Path); err != nil {
		return nil, err
	}
	path, err := library.NormalizePath(args.Path)
	if err != nil {
		return nil, err
	}
	if !b.registered(path) {
		return nil, fmt.Errorf("%w: %s is not in the library", library.ErrNotFound, path)
	}
	if err := b.launcher.Launch(ctx, path); err != nil {
		return nil, err
	}
	return successResult{Success: true}, nil
}

func (b *Bridge) chooseFile(ctx context.Context, _ json.RawMessage) (any, error) {
	path, ok, err := b.picker.PickFile(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return path, nil
}

func (b *Bridge) registered(path string) bool {
	for _, g := range b.library.List() {
		if g.Path == path {
			return true
		}
	}
	return false
}

func decodeArgs(raw json.RawMessage, dst any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrBadRequest, name)
	}
	return nil
}

const (
	CodeDuplicateEntry      = "DUPLICATE_ENTRY"
	CodeNotFound            = "NOT_FOUND"
	CodeNoMatch             = "NO_MATCH"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeUpstreamRejected    = "UPSTREAM_REJECTED"
	CodeFileNotFound        = "FILE_NOT_FOUND"
	CodeLaunchFailed        = "LAUNCH_FAILED"
	CodeUnknownOperation    = "UNKNOWN_OPERATION"
	CodeBadRequest          = "BAD_REQUEST"
	CodeStoreUnreadable     = "STORE_UNREADABLE"
	CodeInternal            = "INTERNAL_ERROR"
)

// ErrorCode maps a component error to its stable bridge code.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, library.ErrDuplicateEntry):
		return CodeDuplicateEntry
	case errors.Is(err, library.ErrNotFound):
		return CodeNotFound
	case errors.Is(err, library.ErrInvalidPath), errors.Is(err, ErrBadRequest):
		return CodeBadRequest
	case errors.Is(err, library.ErrStoreRead):
		return CodeStoreUnreadable
	case errors.Is(err, enrich.ErrNoMatch):
		return CodeNoMatch
	case errors.Is(err, enrich.ErrUpstreamUnavailable):
		return CodeUpstreamUnavailable
	case errors.Is(err, enrich.ErrUpstreamRejected):
		return CodeUpstreamRejected
	case errors.Is(err, launch.ErrFileNotFound):
		return CodeFileNotFound
	case errors.Is(err, launch.ErrLaunchFailed):
		return CodeLaunchFailed
	case errors.Is(err, ErrUnknownOperation):
		return CodeUnknownOperation
	default:
		return CodeInternal
	}
}
