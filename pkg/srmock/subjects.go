package srmock

import (
	"context"

	"github.com/osvaldoandrade/srmock/internal/domain"
)

// KeySubject is the TopicNameStrategy subject for a topic's keys.
func KeySubject(topic string) string {
	return domain.KeySubject(topic)
}

// ValueSubject is the TopicNameStrategy subject for a topic's values.
func ValueSubject(topic string) string {
	return domain.ValueSubject(topic)
}

func (r *Registry) RegisterKeySchema(ctx context.Context, topic string, schema Schema) (Registration, error) {
	return r.Register(ctx, KeySubject(topic), schema)
}

func (r *Registry) RegisterValueSchema(ctx context.Context, topic string, schema Schema) (Registration, error) {
	return r.Register(ctx, ValueSubject(topic), schema)
}

func (r *Registry) DeleteKeySchema(ctx context.Context, topic string) ([]int, error) {
	return r.DeleteSubject(ctx, KeySubject(topic))
}

func (r *Registry) DeleteValueSchema(ctx context.Context, topic string) ([]int, error) {
	return r.DeleteSubject(ctx, ValueSubject(topic))
}
