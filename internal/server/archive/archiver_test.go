package archive

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/keysafe-protocol/keysafe/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	if in.Body != nil {
		f.body, _ = io.ReadAll(in.Body)
	}
	return &s3.PutObjectOutput{}, f.err
}

func finalizedFixture() (models.User, models.Recovery) {
	user := models.User{
		ID: "alice",
		Custodians: [models.CustodianCount]models.Custodian{
			{NodeID: "n1"}, {NodeID: "n2"}, {NodeID: "n3"},
		},
	}
	rec := models.NewRecovery("alice").
		WithResetConfirmations().
		WithConfirmation(0, "proof-1").
		WithConfirmation(2, "proof-3").
		WithFinalized()
	return user, rec
}

func TestNewReceipt(t *testing.T) {
	user, rec := finalizedFixture()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))

	r := NewReceipt(user, rec, 1, at)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "alice", r.UserID)
	assert.Equal(t, uint32(1), r.Round)
	assert.Equal(t, []string{"n1", "n2", "n3"}, r.Custodians)
	assert.Equal(t, []bool{true, false, true}, r.Confirmed)
	sum := blake2b.Sum256([]byte("proof-1"))
	assert.Equal(t, hex.EncodeToString(sum[:]), r.ProofDigests[0])
	assert.Empty(t, r.ProofDigests[1])
	assert.Len(t, r.ProofDigests[2], 64)
	assert.Equal(t, uint64(1), r.RewardPerCustodian)
	assert.Equal(t, time.UTC, r.FinalizedAt.Location())
	assert.Equal(t, "receipts/alice/1-"+r.ID+".json", r.Key())
}

func TestReceipt_KeyEscapesUserID(t *testing.T) {
	tests := []struct {
		user string
		want string
	}{
		{user: "alice", want: "alice"},
		{user: "../other/1-x.json", want: "..%2Fother%2F1-x.json"},
		{user: "a b?c#d", want: "a%20b%3Fc%23d"},
		{user: "..", want: "%2E%2E"},
		{user: ".", want: "%2E"},
	}
	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			r := Receipt{ID: "id", UserID: tt.user, Round: 2}
			key := r.Key()
			assert.Equal(t, "receipts/"+tt.want+"/2-id.json", key)
			assert.Len(t, strings.Split(key, "/"), 3)
		})
	}
}

func TestS3Archiver_Archive(t *testing.T) {
	user, rec := finalizedFixture()
	r := NewReceipt(user, rec, 1, time.Now())

	fp := &fakePutter{}
	a := &S3Archiver{client: fp, bucket: "receipts"}

	require.NoError(t, a.Archive(context.Background(), r))
	assert.Equal(t, "receipts", aws.ToString(fp.in.Bucket))
	assert.Equal(t, r.Key(), aws.ToString(fp.in.Key))
	assert.Equal(t, "application/json", aws.ToString(fp.in.ContentType))

	var got Receipt
	require.NoError(t, json.Unmarshal(fp.body, &got))
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, r.ProofDigests, got.ProofDigests)
}

func TestS3Archiver_ArchiveError(t *testing.T) {
	user, rec := finalizedFixture()
	a := &S3Archiver{client: &fakePutter{err: errors.New("denied")}, bucket: "receipts"}

	err := a.Archive(context.Background(), NewReceipt(user, rec, 1, time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "denied")
}

func TestNewS3Archiver(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		assert.NotNil(t, lo.Credentials, "static credentials expected")
		return aws.Config{}, nil
	}

	var opts s3.Options
	fp := &fakePutter{}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		for _, fn := range optFns {
			fn(&opts)
		}
		return fp
	}

	a, err := NewS3Archiver(context.Background(), S3Options{
		Region: "us-east-1", AccessKey: "ak", SecretKey: "sk",
		BaseEndpoint: "http://minio:9000", Bucket: "receipts",
	})
	require.NoError(t, err)
	assert.Same(t, fp, a.client)
	assert.Equal(t, "http://minio:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
}

func TestNewS3Archiver_Errors(t *testing.T) {
	_, err := NewS3Archiver(context.Background(), S3Options{})
	require.Error(t, err)

	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}

	_, err = NewS3Archiver(context.Background(), S3Options{Bucket: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no config")
}

func TestNoop(t *testing.T) {
	var a Archiver = Noop{}
	assert.NoError(t, a.Archive(context.Background(), Receipt{}))
}
