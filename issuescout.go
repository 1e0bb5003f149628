// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package issuescout

import (
	"context"
	"log/slog"

	"github.com/poiesic/issuescout/ai"
	"github.com/poiesic/issuescout/ai/openai"
	"github.com/poiesic/issuescout/classify"
	"github.com/poiesic/issuescout/core"
	"github.com/poiesic/issuescout/github"
	"github.com/poiesic/issuescout/rank"
	"github.com/poiesic/issuescout/recommend"
	"github.com/poiesic/issuescout/storage"
	"github.com/poiesic/issuescout/storage/badger"
)

type Recommender struct {
	backend    *badger.Backend
	cache      storage.Cache
	provider   ai.AIProvider
	classifier *classify.ExperienceClassifier
	pipeline   *recommend.Pipeline
	config     *ai.Config
	logger     *slog.Logger
}

// RecommenderOption configures a Recommender.
type RecommenderOption func(*recommenderOptions)

type recommenderOptions struct {
	aiConfig      *ai.Config
	provider      ai.AIProvider
	retriever     github.Retriever
	githubToken   string
	useLLM        bool
	inMemoryCache bool
}

// WithAIConfig sets the AI service configuration.
func WithAIConfig(config *ai.Config) RecommenderOption {
	return func(o *recommenderOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a prebuilt AI provider instead of constructing
// one from the config. The Recommender takes ownership and closes it.
func WithProvider(provider ai.AIProvider) RecommenderOption {
	return func(o *recommenderOptions) {
		o.provider = provider
	}
}

// WithRetriever injects a custom issue retriever.
func WithRetriever(retriever github.Retriever) RecommenderOption {
	return func(o *recommenderOptions) {
		o.retriever = retriever
	}
}

// WithGitHubToken sets the GitHub API token explicitly instead of
// reading GITHUB_TOKEN.
func WithGitHubToken(token string) RecommenderOption {
	return func(o *recommenderOptions) {
		o.githubToken = token
	}
}

// WithLLMClassifier classifies profiles with the chat model instead of
// exemplar embedding similarity.
func WithLLMClassifier() RecommenderOption {
	return func(o *recommenderOptions) {
		o.useLLM = true
	}
}

// WithInMemoryCache keeps the cache in memory, ignoring the cache path.
func WithInMemoryCache() RecommenderOption {
	return func(o *recommenderOptions) {
		o.inMemoryCache = true
	}
}

func New(cachePath string, opts ...RecommenderOption) (*Recommender, error) {
	// Apply options
	options := &recommenderOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend and cache
	backend, err := badger.OpenBackend(cachePath, options.inMemoryCache)
	if err != nil {
		return nil, err
	}

	cache, err := badger.NewStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			cache.Close()
			backend.Close()
			return nil, err
		}
	}

	// Create retriever
	retriever := options.retriever
	if retriever == nil {
		var clientOpts []github.ClientOption
		if options.githubToken != "" {
			clientOpts = append(clientOpts, github.WithToken(options.githubToken))
		}
		retriever = github.NewClient(clientOpts...)
	}

	// Wire the classification strategy
	classifier := classify.NewExperienceClassifier(
		provider.Embedder(), cache, options.aiConfig.EmbeddingModel)

	var strategy classify.Strategy
	if options.useLLM {
		strategy = classify.NewLLMStrategy(provider.ProfileAnalyzer())
	} else {
		strategy = classify.NewEmbeddingStrategy(classifier)
	}

	pipeline, err := recommend.NewPipeline(
		retriever, strategy, rank.NewRanker(provider.Embedder(), cache), cache)
	if err != nil {
		provider.Close()
		cache.Close()
		backend.Close()
		return nil, err
	}

	return &Recommender{
		backend:    backend,
		cache:      cache,
		provider:   provider,
		classifier: classifier,
		pipeline:   pipeline,
		config:     options.aiConfig,
		logger:     slog.Default(),
	}, nil
}

// Recommend produces issue recommendations for a request.
// A non-empty Request.Model must match the configured embedding model;
// cached embeddings are only valid for the model that produced them.
func (r *Recommender) Recommend(ctx context.Context, req *core.Request) (*recommend.Result, error) {
	return r.RecommendWithMonitor(ctx, req, nil)
}

// RecommendWithMonitor produces issue recommendations with monitoring.
func (r *Recommender) RecommendWithMonitor(ctx context.Context, req *core.Request, monitor recommend.Monitor) (*recommend.Result, error) {
	if req != nil && req.Model != "" && req.Model != r.config.EmbeddingModel {
		return nil, core.ErrModelMismatch
	}
	return r.pipeline.RecommendWithMonitor(ctx, req, monitor)
}

// WarmReferences precomputes the exemplar embeddings used by the
// embedding classifier so the first recommendation pays no warm-up cost.
func (r *Recommender) WarmReferences(ctx context.Context) error {
	return r.classifier.WarmReferences(ctx)
}

// ClearProfileEmbeddings removes all cached profile embeddings.
func (r *Recommender) ClearProfileEmbeddings(ctx context.Context) error {
	return r.cache.ClearProfileEmbeddings(ctx)
}

// ClearReferenceEmbeddings removes all cached exemplar embeddings.
func (r *Recommender) ClearReferenceEmbeddings(ctx context.Context) error {
	return r.cache.ClearReferenceEmbeddings(ctx)
}

// ClearIssueBatches removes all cached issue batches.
func (r *Recommender) ClearIssueBatches(ctx context.Context) error {
	return r.cache.ClearIssueBatches(ctx)
}

// ClearAll removes every cached entry.
func (r *Recommender) ClearAll(ctx context.Context) error {
	return r.cache.ClearAll(ctx)
}

// Cache exposes the underlying cache.
func (r *Recommender) Cache() storage.Cache {
	return r.cache
}

func (r *Recommender) Close() error {
	// Close AI provider first
	if err := r.provider.Close(); err != nil {
		r.logger.Error("error closing AI provider", "err", err)
	}

	if err := r.cache.Close(); err != nil {
		r.logger.Error("error closing cache", "err", err)
		return err
	}

	// Close backend
	if err := r.backend.Close(); err != nil {
		r.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
