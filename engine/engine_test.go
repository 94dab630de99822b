package engine

import (
	"context"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/rushteam/mentorkit/core"
	"github.com/rushteam/mentorkit/source"
)

func testProfiles() []core.RawProfile {
	return []core.RawProfile{
		{
			"mentor_id": "m1", "name": "Alice", "title": "Data Scientist",
			"skills": "python, data science", "experience": "", "industry": "fintech",
		},
		{
			"mentor_id": "m2", "name": "Bob", "title": "Backend Engineer",
			"skills": "java, backend", "experience": "", "industry": "fintech",
		},
		{
			"mentor_id": "m3", "name": "Carol", "title": "ML Engineer",
			"skills": "python, machine learning", "experience": "", "industry": "healthcare",
		},
	}
}

func trainedEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	eng := New(source.NewStatic(testProfiles()), opts...)
	if err := eng.Train(context.Background()); err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	return eng
}

func fintechProfile() *core.MenteeProfile {
	return &core.MenteeProfile{
		Skills:             []string{"python", "data science"},
		CareerGoals:        "",
		IndustryPreference: "fintech",
	}
}

func TestRecommend_ExactMatchRanksFirst(t *testing.T) {
	eng := trainedEngine(t)

	// Query text tokenizes exactly like m1's feature text.
	recs, err := eng.Recommend(context.Background(), "s1", fintechProfile(), 2)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(recs))
	}

	if recs[0].MentorID != "m1" {
		t.Errorf("top result = %s, want m1", recs[0].MentorID)
	}
	if math.Abs(recs[0].MatchScore-1.0) > 1e-9 {
		t.Errorf("top score = %v, want 1.0", recs[0].MatchScore)
	}
	// m2 shares "fintech" (weighted by IDF) with the query, m3 only "python";
	// with this corpus m2 outranks m3.
	if recs[1].MentorID != "m2" {
		t.Errorf("second result = %s, want m2", recs[1].MentorID)
	}
}

func TestRecommend_ScoreBoundsAndOrdering(t *testing.T) {
	eng := trainedEngine(t)

	recs, err := eng.Recommend(context.Background(), "s1", fintechProfile(), 10)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 3 { // min(top_n, corpus size)
		t.Fatalf("len(recs) = %d, want 3", len(recs))
	}

	for i, rec := range recs {
		if rec.MatchScore < 0 || rec.MatchScore > 1 {
			t.Errorf("recs[%d].MatchScore = %v, want in [0,1]", i, rec.MatchScore)
		}
		if i > 0 && recs[i-1].MatchScore < rec.MatchScore {
			t.Errorf("scores not non-increasing at %d: %v < %v", i, recs[i-1].MatchScore, rec.MatchScore)
		}
	}
}

func TestRecommend_UnknownTermsYieldZeroScoresInCorpusOrder(t *testing.T) {
	eng := trainedEngine(t)

	profile := &core.MenteeProfile{
		Skills:             []string{"quantum"},
		CareerGoals:        "blockchain consensus",
		IndustryPreference: "",
	}
	recs, err := eng.Recommend(context.Background(), "s1", profile, 2)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(recs))
	}

	wantOrder := []string{"m1", "m2"} // original corpus order, truncated
	for i, rec := range recs {
		if rec.MatchScore != 0 {
			t.Errorf("recs[%d].MatchScore = %v, want 0", i, rec.MatchScore)
		}
		if rec.MentorID != wantOrder[i] {
			t.Errorf("recs[%d].MentorID = %s, want %s", i, rec.MentorID, wantOrder[i])
		}
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	eng := trainedEngine(t)

	first, err := eng.Recommend(context.Background(), "s1", fintechProfile(), 3)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	second, err := eng.Recommend(context.Background(), "s1", fintechProfile(), 3)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical queries differ:\n%+v\n%+v", first, second)
	}
}

func TestRecommend_TieKeepsCorpusOrderAcrossCalls(t *testing.T) {
	// Two mentors with identical feature text score exactly equal against
	// any query; the tie must break toward the lower corpus index on every
	// single call, not just most of them.
	eng := New(source.NewStatic([]core.RawProfile{
		{
			"mentor_id": "m1", "name": "Alice", "title": "Data Scientist",
			"skills": "python, data science", "experience": "", "industry": "fintech",
		},
		{
			"mentor_id": "m2", "name": "Bob", "title": "Data Scientist",
			"skills": "python, data science", "experience": "", "industry": "fintech",
		},
	}))
	if err := eng.Train(context.Background()); err != nil {
		t.Fatalf("Train() error = %v", err)
	}

	for i := 0; i < 2000; i++ {
		recs, err := eng.Recommend(context.Background(), "s1", fintechProfile(), 2)
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if recs[0].MentorID != "m1" || recs[1].MentorID != "m2" {
			t.Fatalf("call %d: order = [%s %s], want [m1 m2] (scores %v, %v)",
				i, recs[0].MentorID, recs[1].MentorID, recs[0].MatchScore, recs[1].MatchScore)
		}
	}
}

func TestRecommend_ClampsTopN(t *testing.T) {
	eng := trainedEngine(t)

	recs, err := eng.Recommend(context.Background(), "s1", fintechProfile(), 50)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 3 { // clamped to 10, then min(10, 3)
		t.Errorf("len(recs) = %d, want 3", len(recs))
	}

	recs, err = eng.Recommend(context.Background(), "s1", fintechProfile(), 0)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 1 { // clamped up to 1
		t.Errorf("len(recs) = %d, want 1", len(recs))
	}
}

func TestRecommend_Details(t *testing.T) {
	eng := trainedEngine(t)

	recs, err := eng.Recommend(context.Background(), "s1", fintechProfile(), 1)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	top := recs[0]
	if top.Name != "Alice" {
		t.Errorf("Name = %q, want Alice", top.Name)
	}
	if top.Details.Title != "Data Scientist" {
		t.Errorf("Details.Title = %q", top.Details.Title)
	}
	wantSkills := []string{"python", "data science"}
	if !reflect.DeepEqual(top.Details.Skills, wantSkills) {
		t.Errorf("Details.Skills = %v, want %v", top.Details.Skills, wantSkills)
	}
	if top.Details.Industry != "fintech" {
		t.Errorf("Details.Industry = %q", top.Details.Industry)
	}
}

func TestRecommend_BeforeTraining(t *testing.T) {
	eng := New(source.NewStatic(testProfiles()))

	_, err := eng.Recommend(context.Background(), "s1", fintechProfile(), 3)
	if err == nil {
		t.Fatal("Recommend() error = nil, want UNAVAILABLE")
	}
	if !core.IsUnavailable(err) {
		t.Errorf("IsUnavailable(%v) = false", err)
	}
}

func TestTrain_SchemaFailure(t *testing.T) {
	profiles := testProfiles()
	delete(profiles[1], "title")

	eng := New(source.NewStatic(profiles))
	err := eng.Train(context.Background())
	if err == nil {
		t.Fatal("Train() error = nil, want SchemaError")
	}
	if !core.IsSchemaInvalid(err) {
		t.Errorf("IsSchemaInvalid(%v) = false", err)
	}
	if eng.State() != StateFailed {
		t.Errorf("State() = %s, want failed", eng.State())
	}

	// The stored reason flows through readiness and request-time errors.
	ok, reason := eng.Readiness()
	if ok || !strings.Contains(reason, "title") {
		t.Errorf("Readiness() = (%v, %q), want failure naming the field", ok, reason)
	}

	_, rerr := eng.Recommend(context.Background(), "s1", fintechProfile(), 3)
	if !core.IsUnavailable(rerr) || !strings.Contains(rerr.Error(), "title") {
		t.Errorf("Recommend() error = %v, want UNAVAILABLE carrying the reason", rerr)
	}
}

func TestTrain_EmptyCorpus(t *testing.T) {
	eng := New(source.NewStatic(nil))
	err := eng.Train(context.Background())
	if err == nil {
		t.Fatal("Train() error = nil, want EmptyCorpusError")
	}
	if !core.IsEmptyCorpus(err) {
		t.Errorf("IsEmptyCorpus(%v) = false", err)
	}
	if eng.State() != StateFailed {
		t.Errorf("State() = %s, want failed", eng.State())
	}
}

func TestTrain_OnlyOnce(t *testing.T) {
	eng := trainedEngine(t)
	if err := eng.Train(context.Background()); err == nil {
		t.Error("second Train() error = nil, want error (Ready is terminal)")
	}
	if eng.State() != StateReady {
		t.Errorf("State() = %s, want ready", eng.State())
	}
}

func TestReadiness(t *testing.T) {
	eng := New(source.NewStatic(testProfiles()))
	if ok, reason := eng.Readiness(); ok || reason == "" {
		t.Errorf("Readiness() before training = (%v, %q)", ok, reason)
	}

	if err := eng.Train(context.Background()); err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	if ok, reason := eng.Readiness(); !ok || reason != "" {
		t.Errorf("Readiness() after training = (%v, %q), want (true, \"\")", ok, reason)
	}
}
