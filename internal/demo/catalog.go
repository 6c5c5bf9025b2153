package demo

import (
	"fmt"

	"github.com/conduit-lang/apihelp/internal/orm/schema"
	"github.com/conduit-lang/apihelp/runtime/apihelp"
)

// Schemas returns the relational schema of the blog models
func Schemas() (*schema.Registry, error) {
	registry := schema.NewRegistry()

	schemas := []struct {
		model  any
		schema *schema.ResourceSchema
	}{
		{User{}, schema.NewResourceSchema("User").
			HasMany("posts", "Post").
			HasMany("comments", "Comment").
			Scope("by_email", schema.Arg("email", schema.TypeEmail)).
			Scope("active")},
		{Post{}, schema.NewResourceSchema("Post").
			BelongsTo("author", "User").
			HasMany("comments", "Comment").
			Scope("published").
			Scope("tagged", schema.Arg("tag", schema.TypeString))},
		{FeaturedPost{}, schema.NewResourceSchema("FeaturedPost").
			BelongsTo("author", "User").
			Scope("top", schema.Arg("limit", schema.TypeInt))},
		{Comment{}, schema.NewResourceSchema("Comment").
			BelongsTo("post", "Post").
			BelongsTo("author", "User")},
	}

	for _, s := range schemas {
		if err := registry.Register(s.model, s.schema); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// New builds a help instance describing the blog models
func New(opts ...apihelp.Option) (*apihelp.Help, error) {
	schemas, err := Schemas()
	if err != nil {
		return nil, fmt.Errorf("demo schemas: %w", err)
	}

	h := apihelp.New(append([]apihelp.Option{apihelp.WithRelationalProvider(schemas)}, opts...)...)
	if err := Describe(h); err != nil {
		return nil, err
	}
	return h, nil
}

// Describe registers the method descriptions of the blog models on h
func Describe(h *apihelp.Help) error {
	entries := []struct {
		class any
		name  string
		desc  string
		opts  []apihelp.RegisterOption
	}{
		{Record{}, "touch", "Sets updated_at to now", nil},
		{Record{}, "persisted", "Whether the record has been saved", nil},
		{User{}, "find", "Finds a user by primary key", []apihelp.RegisterOption{apihelp.WithParams("id")}},
		{User{}, "find_by_email", "Finds a user by email address", []apihelp.RegisterOption{apihelp.WithParams("email")}},
		{User{}, "full_name", "First and last name joined by a space", nil},
		{User{}, "rename", "Replaces the first and last name", []apihelp.RegisterOption{apihelp.WithParams("first", "last")}},
		{Post{}, "recent", "Newest posts first", []apihelp.RegisterOption{apihelp.WithParams("limit")}},
		{Post{}, "slug", "URL fragment derived from the title", nil},
		{Post{}, "publish", "Makes the post visible", []apihelp.RegisterOption{apihelp.WithParams("at")}},
		{Post{}, "tag", "Adds tags to the post", []apihelp.RegisterOption{apihelp.WithParams("tags")}},
		{FeaturedPost{}, "promote", "Moves the post up the front page", []apihelp.RegisterOption{apihelp.WithParams("by")}},
		{Comment{}, "excerpt", "Leading characters of the body", []apihelp.RegisterOption{apihelp.WithParams("length")}},
	}

	for _, e := range entries {
		if err := h.Register(e.class, e.name, e.desc, e.opts...); err != nil {
			return err
		}
	}
	return nil
}
