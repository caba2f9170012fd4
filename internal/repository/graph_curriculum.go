package repository

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"learnpath_backend/internal/curriculum"
	"learnpath_backend/pkg/graphdb"
	"learnpath_backend/pkg/logger"

	"go.uber.org/zap"
)

// GraphCurriculumRepository mirrors the static curriculum into Neo4j and
// records per-user completion edges. Every method is best-effort: callers
// already hold the static graph, so failures are logged and swallowed.
type GraphCurriculumRepository struct {
	client *graphdb.Client
}

func NewGraphCurriculumRepository(client *graphdb.Client) *GraphCurriculumRepository {
	return &GraphCurriculumRepository{client: client}
}

func (r *GraphCurriculumRepository) Enabled() bool {
	return r != nil && r.client != nil
}

func (r *GraphCurriculumRepository) session(ctx context.Context) neo4j.SessionWithContext {
	return r.client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: r.client.Database,
	})
}

// SyncNodes upserts every curriculum node and its REQUIRES edges. Run once
// at startup.
func (r *GraphCurriculumRepository) SyncNodes(ctx context.Context) {
	if !r.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	session := r.session(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, node := range curriculum.Nodes() {
			_, err := tx.Run(ctx,
				`MERGE (n:Topic {id: $id})
				 SET n.label = $label, n.domain = $domain, n.level = $level`,
				map[string]any{"id": node.ID, "label": node.Label, "domain": node.Domain, "level": node.Level})
			if err != nil {
				return nil, err
			}
			for _, dep := range node.Prereqs {
				_, err := tx.Run(ctx,
					`MATCH (a:Topic {id: $id}), (b:Topic {id: $dep})
					 MERGE (a)-[:REQUIRES]->(b)`,
					map[string]any{"id": node.ID, "dep": dep})
				if err != nil {
					return nil, err
				}
			}
		}
		return nil, nil
	})
	if err != nil {
		logger.Log.Warn("graph curriculum sync failed", zap.Error(err))
		return
	}
	logger.Log.Info("graph curriculum synced", zap.Int("nodes", len(curriculum.Nodes())))
}

// RecordCompletion writes a (:Learner)-[:COMPLETED]->(:Topic) edge.
func (r *GraphCurriculumRepository) RecordCompletion(ctx context.Context, userEmail, nodeID string) {
	if !r.Enabled() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	session := r.session(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx,
			`MERGE (u:Learner {email: $email})
			 WITH u
			 MATCH (t:Topic {id: $node})
			 MERGE (u)-[c:COMPLETED]->(t)
			 ON CREATE SET c.at = datetime()`,
			map[string]any{"email": userEmail, "node": nodeID})
		return nil, err
	})
	if err != nil {
		logger.Log.Warn("graph completion write failed",
			zap.String("node", nodeID), zap.Error(err))
	}
}

// ListNodeIDs reads topic ids back from the mirror; used by the health
// probe to report graph staleness.
func (r *GraphCurriculumRepository) ListNodeIDs(ctx context.Context) ([]string, error) {
	if !r.Enabled() {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	session := r.client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: r.client.Database,
	})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `MATCH (n:Topic) RETURN n.id AS id ORDER BY id`, nil)
		if err != nil {
			return nil, err
		}
		var ids []string
		for res.Next(ctx) {
			if id, ok := res.Record().Get("id"); ok {
				if s, ok := id.(string); ok {
					ids = append(ids, s)
				}
			}
		}
		return ids, res.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]string), nil
}
