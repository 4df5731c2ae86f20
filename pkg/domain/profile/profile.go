// Package profile holds the learner's onboarding data: the target role, the
// weekly time commitment, and the explicit skip list of skills already
// known. The engine consumes this per invocation and never owns it.
package profile

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Profile is the learner's roadmap input, persisted as profile.yaml.
type Profile struct {
	ID            string    `json:"id" yaml:"id"`
	TargetRole    string    `json:"target_role" yaml:"target_role"`
	WeeklyHours   int       `json:"weekly_hours" yaml:"weekly_hours"`
	KnownSkillIDs []string  `json:"known_skills" yaml:"known_skills"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" yaml:"updated_at"`
}

// New creates a profile with a fresh identity.
func New(targetRole string, weeklyHours int, knownSkillIDs []string) *Profile {
	now := time.Now()
	known := append([]string(nil), knownSkillIDs...)
	sort.Strings(known)
	return &Profile{
		ID:            uuid.NewString(),
		TargetRole:    targetRole,
		WeeklyHours:   weeklyHours,
		KnownSkillIDs: known,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate checks the profile fields the engine contract depends on.
func (p *Profile) Validate() error {
	if p.TargetRole == "" {
		return fmt.Errorf("target role is required")
	}
	if p.WeeklyHours <= 0 {
		return fmt.Errorf("weekly hours must be positive, got %d", p.WeeklyHours)
	}
	return nil
}

// SetWeeklyHours updates the weekly commitment.
func (p *Profile) SetWeeklyHours(hours int) {
	p.WeeklyHours = hours
	p.UpdatedAt = time.Now()
}

// SetTargetRole updates the target role.
func (p *Profile) SetTargetRole(role string) {
	p.TargetRole = role
	p.UpdatedAt = time.Now()
}

// AddKnownSkills merges ids into the skip list, keeping it sorted and
// duplicate-free.
func (p *Profile) AddKnownSkills(ids ...string) {
	known := make(map[string]struct{}, len(p.KnownSkillIDs)+len(ids))
	for _, id := range p.KnownSkillIDs {
		known[id] = struct{}{}
	}
	for _, id := range ids {
		known[id] = struct{}{}
	}
	merged := make([]string, 0, len(known))
	for id := range known {
		merged = append(merged, id)
	}
	sort.Strings(merged)
	p.KnownSkillIDs = merged
	p.UpdatedAt = time.Now()
}

// RemoveKnownSkills removes ids from the skip list.
func (p *Profile) RemoveKnownSkills(ids ...string) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := p.KnownSkillIDs[:0]
	for _, id := range p.KnownSkillIDs {
		if _, ok := drop[id]; !ok {
			kept = append(kept, id)
		}
	}
	p.KnownSkillIDs = kept
	p.UpdatedAt = time.Now()
}
