package main

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/CypherCore/CypherCore-sub016/internal/config"
	"github.com/CypherCore/CypherCore-sub016/internal/db"
	"github.com/CypherCore/CypherCore-sub016/internal/packetlog"
	"github.com/CypherCore/CypherCore-sub016/internal/testutil"
	"github.com/CypherCore/CypherCore-sub016/internal/worldserver/opcodes"
)

// sessionRecords is a short session: two pings, a pong, a compressed pong
// and a ping whose opcode field carries bits above 0xFFFF.
func sessionRecords(t *testing.T) []packetlog.Record {
	t.Helper()

	wide := pingRecord()
	wide.Opcode += 0x10000

	recs := []packetlog.Record{pingRecord(), pingRecord(), {
		Direction: packetlog.ServerToClient,
		Opcode:    uint32(opcodes.SMSGPong),
		Payload:   []byte{7, 0, 0, 0},
	}, compressedRecord(t), wide}
	for i := range recs {
		recs[i].ConnectionID = 1
		recs[i].ArrivalTicks = uint32(1000 + i)
	}
	return recs
}

func writeSession(t *testing.T, dir string) string {
	t.Helper()

	h := packetlog.Header{
		ClientBuild: 26972,
		StartTime:   time.Date(2018, time.June, 1, 12, 0, 0, 0, time.UTC),
	}
	copy(h.Locale[:], "enUS")

	path := filepath.Join(dir, "session.pkt")
	fw, err := packetlog.CreateFile(path, h)
	require.NoError(t, err)
	for _, rec := range sessionRecords(t) {
		require.NoError(t, fw.Write(context.Background(), rec))
	}
	require.NoError(t, fw.Close())
	return path
}

func TestRun_MissingConfigUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	capture := writeSession(t, dir)
	t.Setenv("PKTDUMP_CONFIG", filepath.Join(dir, "absent.yaml"))

	ctx := testutil.ContextWithTimeout(t, 10*time.Second)
	require.NoError(t, run(ctx, capture))
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	ctx := testutil.ContextWithTimeout(t, 10*time.Second)

	t.Setenv("PKTDUMP_CONFIG", filepath.Join(dir, "absent.yaml"))
	assert.Error(t, run(ctx, filepath.Join(dir, "missing.pkt")))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("decode:\n  queue_size: 0\n"), 0o600))
	t.Setenv("PKTDUMP_CONFIG", bad)
	err := run(ctx, writeSession(t, dir))
	assert.ErrorContains(t, err, "loading config")
}

func TestDump_Stats(t *testing.T) {
	t.Parallel()

	capture := writeSession(t, t.TempDir())
	ctx := testutil.ContextWithTimeout(t, 10*time.Second)

	stats, err := dump(ctx, config.DefaultPktDump(), capture)
	require.NoError(t, err)
	assert.Equal(t, decodeStats{
		Client:   3,
		Server:   2,
		Decoded:  4,
		Unknown:  1,
		Inflated: 1,
	}, stats)
}

// databaseFromDSN splits a container DSN into config fields.
func databaseFromDSN(t *testing.T, dsn string) config.DatabaseConfig {
	t.Helper()

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	pass, _ := u.User.Password()
	return config.DatabaseConfig{
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Password: pass,
		DBName:   u.Path[1:],
		SSLMode:  "disable",
	}
}

func TestRun_MirrorsCapture(t *testing.T) {
	pool, dsn := testutil.SetupTestDB(t)
	dir := t.TempDir()
	capture := writeSession(t, dir)

	cfg := config.DefaultPktDump()
	cfg.Database = databaseFromDSN(t, dsn)
	cfg.Mirror.Enabled = true
	cfg.Mirror.BatchSize = 2
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	cfgPath := filepath.Join(dir, "pktdump.yaml")
	require.NoError(t, os.WriteFile(cfgPath, data, 0o600))
	t.Setenv("PKTDUMP_CONFIG", cfgPath)

	ctx := testutil.ContextWithTimeout(t, 60*time.Second)
	want := []db.OpcodeCount{
		{Direction: db.DirectionClientToServer, Opcode: uint32(opcodes.CMSGPing), OpcodeName: "CMSG_PING", Count: 2},
		{Direction: db.DirectionClientToServer, Opcode: uint32(opcodes.CMSGPing) + 0x10000, OpcodeName: "CMSG_UNKNOWN_0x13201", Count: 1},
		{Direction: db.DirectionServerToClient, Opcode: uint32(opcodes.SMSGPong), OpcodeName: "SMSG_PONG", Count: 1},
		{Direction: db.DirectionServerToClient, Opcode: uint32(opcodes.SMSGCompressedPacket), OpcodeName: "SMSG_COMPRESSED_PACKET", Count: 1},
	}

	// a second run replaces the first mirror instead of doubling it
	for range 2 {
		require.NoError(t, run(ctx, capture))

		counts, err := db.NewPacketRepository(pool).CountByOpcode(ctx, "session.pkt")
		require.NoError(t, err)
		require.Len(t, counts, len(want))
		assert.Equal(t, want[0], counts[0], "most frequent opcode first")
		assert.ElementsMatch(t, want, counts)
	}

	var total int64
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM packet_log").Scan(&total))
	assert.Equal(t, int64(len(sessionRecords(t))), total)
}
