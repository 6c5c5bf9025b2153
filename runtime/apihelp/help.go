package apihelp

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Environment decides how registration failures are reported
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// DefaultMaxTraceFrames bounds the stack trace logged for a swallowed
// registration failure
const DefaultMaxTraceFrames = 31

// ParseEnvironment converts a string to an Environment
func ParseEnvironment(s string) (Environment, error) {
	switch Environment(strings.ToLower(strings.TrimSpace(s))) {
	case "", Development:
		return Development, nil
	case Test:
		return Test, nil
	case Production:
		return Production, nil
	default:
		return "", fmt.Errorf("unknown environment: %s", s)
	}
}

// Help registers method descriptions and answers help queries
type Help struct {
	registry   *Registry
	resolver   *Resolver
	relational *RelationalAdapter
	seeAlso    *SeeAlso
	provider   RelationalProvider

	logger         *zap.Logger
	env            Environment
	maxTraceFrames int
}

// Option configures a Help
type Option func(*Help)

// WithRegistry uses an existing registry instead of a fresh one
func WithRegistry(r *Registry) Option {
	return func(h *Help) { h.registry = r }
}

// WithLogger sets the logger used for swallowed registration failures
func WithLogger(l *zap.Logger) Option {
	return func(h *Help) { h.logger = l }
}

// WithEnvironment sets the environment
func WithEnvironment(env Environment) Option {
	return func(h *Help) { h.env = env }
}

// WithRelationalProvider sets the source of relations and scopes
func WithRelationalProvider(p RelationalProvider) Option {
	return func(h *Help) { h.provider = p }
}

// WithMaxTraceFrames bounds the logged stack trace
func WithMaxTraceFrames(n int) Option {
	return func(h *Help) { h.maxTraceFrames = n }
}

// New creates a Help. Without WithLogger, production uses a zap production
// logger and every other environment a development logger.
func New(opts ...Option) *Help {
	h := &Help{
		env:            Development,
		maxTraceFrames: DefaultMaxTraceFrames,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.registry == nil {
		h.registry = NewRegistry()
	}
	if h.provider == nil {
		h.provider = InterfaceProvider{}
	}
	if h.maxTraceFrames <= 0 {
		h.maxTraceFrames = DefaultMaxTraceFrames
	}
	if h.logger == nil {
		h.logger = newLogger(h.env)
	}

	h.resolver = NewResolver(h.registry)
	h.relational = NewRelationalAdapter(h.provider)
	h.seeAlso = NewSeeAlso(h.resolver)
	return h
}

func newLogger(env Environment) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if env == Production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

var (
	defaultHelp   *Help
	defaultHelpMu sync.Mutex
)

// Default returns the process-wide Help, creating it on first use
func Default() *Help {
	defaultHelpMu.Lock()
	defer defaultHelpMu.Unlock()

	if defaultHelp == nil {
		defaultHelp = New()
	}
	return defaultHelp
}

// SetDefault replaces the process-wide Help
func SetDefault(h *Help) {
	defaultHelpMu.Lock()
	defer defaultHelpMu.Unlock()
	defaultHelp = h
}

// Describe registers a method description on the process-wide Help
func Describe(class any, name, description string, opts ...RegisterOption) error {
	return Default().Register(class, name, description, opts...)
}

// Query returns the rendered listing of class from the process-wide Help
func Query(class any, term string, opts ...QueryOption) []string {
	return Default().Query(class, term, opts...)
}

// Registry returns the underlying registry
func (h *Help) Registry() *Registry {
	return h.registry
}

// Resolver returns the hierarchy resolver
func (h *Help) Resolver() *Resolver {
	return h.resolver
}

// Logger returns the logger failures are reported to
func (h *Help) Logger() *zap.Logger {
	return h.logger
}

// Environment returns the configured environment
func (h *Help) Environment() Environment {
	return h.env
}

// RegisterOption configures a single registration
type RegisterOption func(*registration)

type registration struct {
	owner  any
	params []string
}

// WithOwner files the descriptor under another class
func WithOwner(class any) RegisterOption {
	return func(r *registration) { r.owner = class }
}

// WithParams names the method's parameters in declaration order
func WithParams(names ...string) RegisterOption {
	return func(r *registration) { r.params = names }
}

// Register records a description for the method name of class. class may be
// a reflect.Type, a value or a pointer.
//
// Invalid registrations return a *RegistrationError, except in production
// where they are logged with a bounded stack trace and nil is returned.
func (h *Help) Register(class any, name, description string, opts ...RegisterOption) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RegistrationError{
				Class:  ClassName(ClassOfValue(class)),
				Method: name,
				Err:    fmt.Errorf("%w: %v", ErrPanic, r),
			}
		}
		if err != nil && h.env == Production {
			h.logFailure(err)
			err = nil
		}
	}()

	reg := &registration{}
	for _, opt := range opts {
		opt(reg)
	}

	owner := ClassOfValue(class)
	if reg.owner != nil {
		owner = ClassOfValue(reg.owner)
	}

	if !validClass(owner) {
		return &RegistrationError{Class: ClassName(owner), Method: name, Err: ErrInvalidClass}
	}
	if strings.TrimSpace(name) == "" {
		return &RegistrationError{Class: ClassName(owner), Method: name, Err: ErrEmptyName}
	}

	h.registry.Append(MethodDescriptor{
		Name:        name,
		Description: description,
		Owner:       owner,
		Params:      reg.params,
	})
	return nil
}

func (h *Help) logFailure(err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.Strings("stack", stackFrames(3, h.maxTraceFrames)),
	}
	if regErr, ok := err.(*RegistrationError); ok {
		fields = append(fields,
			zap.String("class", regErr.Class),
			zap.String("method", regErr.Method),
		)
	}
	h.logger.Error("api help registration failed", fields...)
}

// Register records a description for a method of T
func Register[T any](h *Help, name, description string, opts ...RegisterOption) error {
	return h.Register(ClassOf[T](), name, description, opts...)
}

// QueryOption configures a query
type QueryOption func(*query)

type query struct {
	instance any
}

// WithInstance supplies a live instance for resolving instance methods
func WithInstance(instance any) QueryOption {
	return func(q *query) { q.instance = instance }
}

// Report computes the structured help listing of class filtered by term.
// An empty term means no filter.
func (h *Help) Report(class any, term string, opts ...QueryOption) *Report {
	q := &query{}
	for _, opt := range opts {
		opt(q)
	}
	return h.buildReport(ClassOfValue(class), term, q.instance)
}

// Query returns the rendered help listing of class filtered by term
func (h *Help) Query(class any, term string, opts ...QueryOption) []string {
	return Lines(h.Report(class, term, opts...))
}

// QueryInstance returns the help listing for the class of instance, using
// instance to resolve instance methods
func (h *Help) QueryInstance(instance any, term string) []string {
	return h.Query(instance, term, WithInstance(instance))
}

// ClassLister is implemented by relational providers that know their
// classes up front
type ClassLister interface {
	Classes() []reflect.Type
}

// Classes returns every class known to the registry or the relational
// provider, sorted by qualified name
func (h *Help) Classes() []reflect.Type {
	seen := make(map[reflect.Type]bool)
	var classes []reflect.Type
	add := func(ts []reflect.Type) {
		for _, t := range ts {
			t = normalize(t)
			if t == nil || seen[t] {
				continue
			}
			seen[t] = true
			classes = append(classes, t)
		}
	}

	add(h.registry.Classes())
	if lister, ok := h.provider.(ClassLister); ok {
		add(lister.Classes())
	}

	sort.Slice(classes, func(i, j int) bool {
		return classes[i].String() < classes[j].String()
	})
	return classes
}

// ClassNames returns the display names of Classes, in the same order
func (h *Help) ClassNames() []string {
	classes := h.Classes()
	names := make([]string, 0, len(classes))
	for _, class := range classes {
		names = append(names, ClassName(class))
	}
	return names
}

// ClassByName finds a known class by qualified name (models.User) or bare
// name (User), ignoring case. Qualified matches win.
func (h *Help) ClassByName(name string) (reflect.Type, bool) {
	classes := h.Classes()
	for _, class := range classes {
		if strings.EqualFold(class.String(), name) {
			return class, true
		}
	}
	for _, class := range classes {
		if strings.EqualFold(class.Name(), name) {
			return class, true
		}
	}
	return nil, false
}
