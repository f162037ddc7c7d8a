package opcodes

import (
	"strings"
	"testing"
)

func TestClient_String(t *testing.T) {
	tests := []struct {
		op   Client
		want string
	}{
		{CMSGAuthSession, "CMSG_AUTH_SESSION"},
		{CMSGGarrisonRequestBlueprintAndSpecializationData, "CMSG_GARRISON_REQUEST_BLUEPRINT_AND_SPECIALIZATION_DATA"},
		{CMSGReportPvpPlayerAfk, "CMSG_REPORT_PVP_PLAYER_AFK"},
		{Client(0xFFFF), "CMSG_UNKNOWN_0xFFFF"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServer_String(t *testing.T) {
	if got := SMSGCompressedPacket.String(); got != "SMSG_COMPRESSED_PACKET" {
		t.Errorf("String() = %q", got)
	}
	if got := Server(0x0001).String(); got != "SMSG_UNKNOWN_0x0001" {
		t.Errorf("String() = %q", got)
	}
	if Server(0x0001).Known() {
		t.Error("Known() = true for unnamed opcode")
	}
}

func TestNamesArePrefixedAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, op := range AllClient() {
		name := op.String()
		if !strings.HasPrefix(name, "CMSG_") {
			t.Errorf("client opcode 0x%04X named %q", uint16(op), name)
		}
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true
	}
	for _, op := range AllServer() {
		name := op.String()
		if !strings.HasPrefix(name, "SMSG_") {
			t.Errorf("server opcode 0x%04X named %q", uint16(op), name)
		}
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true
	}
}
