package store

import (
	"context"
	"fmt"

	"github.com/abhisek/autodidact/ent"
	"github.com/abhisek/autodidact/ent/learningobjective"
	"github.com/abhisek/autodidact/ent/node"
	"github.com/abhisek/autodidact/ent/prereqedge"
	"github.com/abhisek/autodidact/ent/project"
	"github.com/abhisek/autodidact/ent/schema"
)

// curriculumRepo implements CurriculumRepo using the ent client.
type curriculumRepo struct {
	client *ent.Client
}

func (r *curriculumRepo) NodeWithObjectives(ctx context.Context, nodeID int) (*NodeInfo, error) {
	n, err := r.client.Node.Query().
		Where(node.ID(nodeID)).
		WithProject().
		WithObjectives(func(q *ent.LearningObjectiveQuery) {
			q.Order(ent.Asc(learningobjective.FieldPosition))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query node %d: %w", nodeID, err)
	}

	p := n.Edges.Project
	info := &NodeInfo{
		ID:           n.ID,
		Key:          n.NodeKey,
		Label:        n.Label,
		ProjectID:    p.ID,
		ProjectTopic: p.Topic,
		Resources:    resourcesFromSchema(p.Resources),
	}
	for _, o := range n.Edges.Objectives {
		info.Objectives = append(info.Objectives, objectiveInfo(o))
	}
	return info, nil
}

func (r *curriculumRepo) PrerequisiteObjectives(ctx context.Context, projectID int, nodeKey string) ([]PrereqObjective, error) {
	edges, err := r.client.PrereqEdge.Query().
		Where(
			prereqedge.TargetKey(nodeKey),
			prereqedge.HasProjectWith(project.ID(projectID)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query prereq edges for %s: %w", nodeKey, err)
	}
	if len(edges) == 0 {
		return nil, nil
	}

	sourceKeys := make([]string, len(edges))
	for i, e := range edges {
		sourceKeys[i] = e.SourceKey
	}

	nodes, err := r.client.Node.Query().
		Where(
			node.NodeKeyIn(sourceKeys...),
			node.HasProjectWith(project.ID(projectID)),
		).
		WithObjectives(func(q *ent.LearningObjectiveQuery) {
			q.Order(ent.Asc(learningobjective.FieldPosition))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query prereq nodes: %w", err)
	}

	var out []PrereqObjective
	for _, n := range nodes {
		for _, o := range n.Edges.Objectives {
			out = append(out, PrereqObjective{
				NodeKey:       n.NodeKey,
				NodeLabel:     n.Label,
				ObjectiveInfo: objectiveInfo(o),
			})
		}
	}
	return out, nil
}

func (r *curriculumRepo) UpdateMastery(ctx context.Context, mastery map[string]float64) error {
	for key, val := range mastery {
		_, err := r.client.LearningObjective.Update().
			Where(learningobjective.ObjectiveKey(key)).
			SetMastery(val).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update mastery for %s: %w", key, err)
		}
	}
	return nil
}

func (r *curriculumRepo) Projects(ctx context.Context) ([]ProjectInfo, error) {
	projects, err := r.client.Project.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	out := make([]ProjectInfo, 0, len(projects))
	for _, p := range projects {
		count, err := p.QueryNodes().Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count nodes for project %d: %w", p.ID, err)
		}
		out = append(out, ProjectInfo{ID: p.ID, Topic: p.Topic, NodeCount: count})
	}
	return out, nil
}

func (r *curriculumRepo) NodeSummaries(ctx context.Context, projectID int) ([]NodeSummary, error) {
	nodes, err := r.client.Node.Query().
		Where(node.HasProjectWith(project.ID(projectID))).
		WithObjectives().
		Order(ent.Asc(node.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query nodes for project %d: %w", projectID, err)
	}

	out := make([]NodeSummary, 0, len(nodes))
	for _, n := range nodes {
		sum := NodeSummary{ID: n.ID, Key: n.NodeKey, Label: n.Label}
		var total float64
		for _, o := range n.Edges.Objectives {
			total += o.Mastery
			sum.ObjectiveCount++
		}
		if sum.ObjectiveCount > 0 {
			sum.AvgMastery = total / float64(sum.ObjectiveCount)
		}
		out = append(out, sum)
	}
	return out, nil
}

func (r *curriculumRepo) CreateProject(ctx context.Context, topic string, resources []ResourceInfo) (int, error) {
	res := make([]schema.Resource, len(resources))
	for i, rr := range resources {
		res[i] = schema.Resource{ResourceID: rr.ResourceID, Title: rr.Title, URL: rr.URL}
	}

	p, err := r.client.Project.Create().
		SetTopic(topic).
		SetResources(res).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("create project: %w", err)
	}
	return p.ID, nil
}

func (r *curriculumRepo) CreateNode(ctx context.Context, projectID int, key, label string) (int, error) {
	n, err := r.client.Node.Create().
		SetProjectID(projectID).
		SetNodeKey(key).
		SetLabel(label).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("create node %s: %w", key, err)
	}
	return n.ID, nil
}

func (r *curriculumRepo) CreateObjective(ctx context.Context, nodeID int, key, description string, position int) error {
	_, err := r.client.LearningObjective.Create().
		SetNodeID(nodeID).
		SetObjectiveKey(key).
		SetDescription(description).
		SetPosition(position).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create objective %s: %w", key, err)
	}
	return nil
}

func (r *curriculumRepo) CreatePrereq(ctx context.Context, projectID int, sourceKey, targetKey string) error {
	_, err := r.client.PrereqEdge.Create().
		SetProjectID(projectID).
		SetSourceKey(sourceKey).
		SetTargetKey(targetKey).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create prereq %s->%s: %w", sourceKey, targetKey, err)
	}
	return nil
}

func objectiveInfo(o *ent.LearningObjective) ObjectiveInfo {
	return ObjectiveInfo{
		Key:         o.ObjectiveKey,
		Description: o.Description,
		Mastery:     o.Mastery,
		Position:    o.Position,
	}
}

func resourcesFromSchema(res []schema.Resource) []ResourceInfo {
	out := make([]ResourceInfo, len(res))
	for i, r := range res {
		out[i] = ResourceInfo{ResourceID: r.ResourceID, Title: r.Title, URL: r.URL}
	}
	return out
}
