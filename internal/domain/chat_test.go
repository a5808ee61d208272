package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestChat_HasParticipant(t *testing.T) {
	t.Parallel()

	alice := uuid.New()
	bob := uuid.New()
	chat := &Chat{ParticipantIDs: []uuid.UUID{alice, bob}}

	if !chat.HasParticipant(alice) || !chat.HasParticipant(bob) {
		t.Error("listed participants should be recognized")
	}
	if chat.HasParticipant(uuid.New()) {
		t.Error("an unlisted user should not be a participant")
	}

	empty := &Chat{}
	if empty.HasParticipant(alice) {
		t.Error("a chat with no participants should recognize nobody")
	}
}
