//go:build unit

package response_test

import (
	"testing"

	resdto "creator-booking/internal/handler/dto/response"
	"creator-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFromBalanceView(t *testing.T) {
	account := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	got, err := resdto.FromBalanceView(&queries.BalanceView{Account: account, Balance: 42, Allowance: 7})
	require.NoError(t, err)

	want := &resdto.BalanceResponse{Account: account.String(), Balance: 42, Allowance: 7}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromBalanceView mismatch (-want +got):\n%s", diff)
	}
}
