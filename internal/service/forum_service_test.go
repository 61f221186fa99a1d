package service

import (
	"context"
	"testing"

	"github.com/campusmind/campusmind/internal/domain"
)

func TestCreatePostApprovedByDefault(t *testing.T) {
	env := newTestEnv(t)
	svc := env.forumService()
	ctx := context.Background()

	resp, err := svc.CreatePost(ctx, &domain.CreatePostRequest{
		Title: "Study tips that helped me",
		Body:  "Short sessions with real breaks worked much better for me.",
	}, "en")
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if resp.HeldForReview || resp.CrisisDetected {
		t.Fatalf("ordinary post should be approved: %+v", resp)
	}

	posts, err := svc.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 visible post, got %d", len(posts))
	}
}

func TestCreatePostCrisisHeldForReview(t *testing.T) {
	env := newTestEnv(t)
	svc := env.forumService()
	ctx := context.Background()

	resp, err := svc.CreatePost(ctx, &domain.CreatePostRequest{
		Title: "I can't do this anymore",
		Body:  "Lately I keep thinking that I want to die.",
	}, "en")
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if !resp.CrisisDetected || !resp.HeldForReview {
		t.Fatalf("crisis post should be held: %+v", resp)
	}
	if resp.CrisisMessage == "" || len(resp.Helplines) == 0 {
		t.Fatal("author of a crisis post must get helpline guidance")
	}

	// not publicly visible
	posts, err := svc.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("held post should not be listed, got %d", len(posts))
	}

	// but queued for moderation, and approvable
	queue, err := svc.ModerationQueue(ctx)
	if err != nil {
		t.Fatalf("ModerationQueue failed: %v", err)
	}
	if len(queue) != 1 {
		t.Fatalf("expected 1 queued post, got %d", len(queue))
	}
	if err := svc.Moderate(ctx, queue[0].ID, true); err != nil {
		t.Fatalf("Moderate failed: %v", err)
	}
	posts, _ = svc.ListPosts(ctx)
	if len(posts) != 1 {
		t.Fatalf("approved post should be listed, got %d", len(posts))
	}
}

func TestFlagThresholdPullsPostBack(t *testing.T) {
	env := newTestEnv(t)
	svc := env.forumService()
	ctx := context.Background()

	resp, err := svc.CreatePost(ctx, &domain.CreatePostRequest{
		Title: "A post others disliked",
		Body:  "Nothing crisis-related here.",
	}, "en")
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := svc.FlagPost(ctx, resp.Post.ID); err != nil {
			t.Fatalf("FlagPost failed: %v", err)
		}
	}
	if posts, _ := svc.ListPosts(ctx); len(posts) != 1 {
		t.Fatal("post should stay visible below the flag threshold")
	}

	if err := svc.FlagPost(ctx, resp.Post.ID); err != nil {
		t.Fatalf("FlagPost failed: %v", err)
	}
	if posts, _ := svc.ListPosts(ctx); len(posts) != 0 {
		t.Fatal("post should be pulled back at the flag threshold")
	}
	if queue, _ := svc.ModerationQueue(ctx); len(queue) != 1 {
		t.Fatal("flagged post should be in the moderation queue")
	}
}

func TestRepliesFollowPostVisibility(t *testing.T) {
	env := newTestEnv(t)
	svc := env.forumService()
	ctx := context.Background()

	resp, err := svc.CreatePost(ctx, &domain.CreatePostRequest{
		Title: "Anyone else homesick?",
		Body:  "First semester away from home has been hard.",
	}, "en")
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	reply, err := svc.CreateReply(ctx, resp.Post.ID, &domain.CreateReplyRequest{
		Body: "Same here. It got easier after I joined a club.",
	}, "en")
	if err != nil {
		t.Fatalf("CreateReply failed: %v", err)
	}
	if reply.Status != domain.ModerationApproved {
		t.Fatalf("ordinary reply should be approved, got %q", reply.Status)
	}

	crisisReply, err := svc.CreateReply(ctx, resp.Post.ID, &domain.CreateReplyRequest{
		Body: "Honestly I just want to die.",
	}, "en")
	if err != nil {
		t.Fatalf("CreateReply failed: %v", err)
	}
	if crisisReply.Status != domain.ModerationPending {
		t.Fatalf("crisis reply should be held, got %q", crisisReply.Status)
	}

	post, err := svc.GetPost(ctx, resp.Post.ID)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if len(post.Replies) != 1 {
		t.Fatalf("only the approved reply should be visible, got %d", len(post.Replies))
	}
}
