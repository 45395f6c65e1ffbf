package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
)

// MsgNotesWithoutObjects は catalog_objects を伴わないメモ指定時のメッセージです
const MsgNotesWithoutObjects = "Notes can only be set together with catalog_objects."

// resolveListingIDs は重複を除いた物件IDを返し、存在しないIDがあればバリデーションエラーにします
// 順序は最初の出現位置を保ちます
// メモは ids に含まれる物件に対してのみ指定できます
func resolveListingIDs(ctx context.Context, listingRepo repository.ListingRepository, ids []int64, notes map[int64]string) ([]int64, error) {
	uniq := lo.Uniq(ids)
	if stray := lo.Without(lo.Keys(notes), uniq...); len(stray) > 0 {
		slices.Sort(stray)
		return nil, apperror.NewFieldError("catalog_object_notes",
			fmt.Sprintf(`Object "%d" is not in catalog_objects.`, stray[0]))
	}
	if len(uniq) == 0 {
		return uniq, nil
	}

	existing, err := listingRepo.ExistingIDs(ctx, uniq)
	if err != nil {
		return nil, apperror.NewInternalError(err)
	}
	missing, _ := lo.Difference(uniq, existing)
	if len(missing) > 0 {
		return nil, apperror.NewFieldError("catalog_objects",
			fmt.Sprintf(`Invalid pk "%d" - object does not exist.`, missing[0]))
	}
	return uniq, nil
}

func wrapRepoError(err error) error {
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.NewInternalError(err)
}
