package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/omer1abay/Todo-App/internal/cache"
	dom "github.com/omer1abay/Todo-App/internal/domain"
	"github.com/omer1abay/Todo-App/internal/dto"
	"github.com/omer1abay/Todo-App/internal/notify"
	"github.com/omer1abay/Todo-App/internal/query"
	"github.com/omer1abay/Todo-App/internal/repo"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// ErrInvalidReference is returned when a command names a list or tag that does not exist.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("referenced list or tag does not exist")
)

// UpdateItemDetail is the input of TodoService.UpdateItemDetail.
type UpdateItemDetail struct {
	ID       int64
	ListID   int64
	Priority dom.PriorityLevel
	Note     string
	Reminder *time.Time
	Tags     []int64
}

// TodoService holds one method per use case. Every command is a single
// load, mutate, commit unit of work on the gateway.
type TodoService struct {
	gw       *repo.Gateway
	reader   *query.Reader
	cache    *cache.BoardCache
	notifier notify.Notifier
	sf       singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled;
// if n is nil, events are dropped.
func NewTodoService(gw *repo.Gateway, reader *query.Reader, c *cache.BoardCache, n notify.Notifier) *TodoService {
	if n == nil {
		n = notify.Nop{}
	}
	return &TodoService{gw: gw, reader: reader, cache: c, notifier: n}
}

func (s *TodoService) CreateList(ctx context.Context, title string) (int64, error) {
	l := dom.TodoList{Title: strings.TrimSpace(title), IsActive: true}
	err := s.gw.InTx(ctx, func(tx *repo.Gateway) error {
		return tx.Lists().Create(ctx, &l)
	})
	if err != nil {
		return 0, fmt.Errorf("create list: %w", err)
	}
	s.invalidateCache(ctx)
	return l.ID, nil
}

func (s *TodoService) UpdateList(ctx context.Context, id int64, title string) error {
	err := s.gw.InTx(ctx, func(tx *repo.Gateway) error {
		l, err := tx.Lists().GetByID(ctx, id)
		if err != nil {
			return err
		}
		l.Title = strings.TrimSpace(title)
		return tx.Lists().Save(ctx, &l)
	})
	if err != nil {
		return mapErr("update list", err)
	}
	s.invalidateCache(ctx)
	return nil
}

// DeleteList soft-deletes the list and every item in it in one commit.
func (s *TodoService) DeleteList(ctx context.Context, id int64) error {
	err := s.gw.InTx(ctx, func(tx *repo.Gateway) error {
		l, err := tx.Lists().GetWithItems(ctx, id)
		if err != nil {
			return err
		}
		l.IsActive = false
		if err := tx.Lists().Save(ctx, &l); err != nil {
			return err
		}
		ids := make([]int64, 0, len(l.Items))
		for _, it := range l.Items {
			ids = append(ids, it.ID)
		}
		_, err = tx.Items().Deactivate(ctx, ids...)
		return err
	})
	if err != nil {
		return mapErr("delete list", err)
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *TodoService) CreateItem(ctx context.Context, listID int64, title, backgroundColor string) (int64, error) {
	it := dom.NewTodoItem(listID, title, backgroundColor)
	err := s.gw.InTx(ctx, func(tx *repo.Gateway) error {
		return tx.Items().Create(ctx, &it)
	})
	if err != nil {
		return 0, mapErr("create item", err)
	}
	s.invalidateCache(ctx)
	return it.ID, nil
}

// UpdateItem sets title and done. A completion is forwarded to the notifier
// only after the change is committed.
func (s *TodoService) UpdateItem(ctx context.Context, id int64, title string, done bool) error {
	var events []dom.Event
	err := s.gw.InTx(ctx, func(tx *repo.Gateway) error {
		it, err := tx.Items().GetByID(ctx, id)
		if err != nil {
			return err
		}
		it.Title = strings.TrimSpace(title)
		events = it.SetDone(done)
		return tx.Items().Save(ctx, &it)
	})
	if err != nil {
		return mapErr("update item", err)
	}
	s.invalidateCache(ctx)
	for _, ev := range events {
		s.notifier.Notify(ctx, ev)
	}
	return nil
}

// UpdateItemDetail replaces the item's tag set with the requested one and
// overwrites list, priority, note and reminder. Newly linked tags must exist
// and be active.
func (s *TodoService) UpdateItemDetail(ctx context.Context, cmd UpdateItemDetail) error {
	err := s.gw.InTx(ctx, func(tx *repo.Gateway) error {
		it, err := tx.Items().GetByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		current, err := tx.ItemTags().ListByItem(ctx, it.ID)
		if err != nil {
			return err
		}
		if len(cmd.Tags) > 0 || len(current) > 0 {
			plan := dom.ReconcileTags(it.ID, current, cmd.Tags)
			for _, a := range plan.Add {
				if _, err := tx.Tags().GetByID(ctx, a.TagID); err != nil {
					return unknownTag(err)
				}
			}
			if err := tx.ItemTags().Delete(ctx, plan.Remove); err != nil {
				return err
			}
			if err := tx.ItemTags().Create(ctx, plan.Add); err != nil {
				return err
			}
		}
		it.ListID = cmd.ListID
		it.Priority = cmd.Priority
		it.Note = cmd.Note
		it.Reminder = cmd.Reminder
		return tx.Items().Save(ctx, &it)
	})
	if err != nil {
		return mapErr("update item detail", err)
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *TodoService) DeleteItem(ctx context.Context, id int64) error {
	err := s.gw.InTx(ctx, func(tx *repo.Gateway) error {
		it, err := tx.Items().GetByID(ctx, id)
		if err != nil {
			return err
		}
		it.IsActive = false
		return tx.Items().Save(ctx, &it)
	})
	if err != nil {
		return mapErr("delete item", err)
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *TodoService) CreateTag(ctx context.Context, name string) (int64, error) {
	t := dom.Tag{Name: strings.TrimSpace(name), IsActive: true}
	err := s.gw.InTx(ctx, func(tx *repo.Gateway) error {
		return tx.Tags().Create(ctx, &t)
	})
	if err != nil {
		return 0, fmt.Errorf("create tag: %w", err)
	}
	s.invalidateCache(ctx)
	return t.ID, nil
}

// Board returns every active list with its items, all active tags and the
// priority levels. Reads go through the cache when one is configured.
//
// A load that started before a commit can store its board after that
// commit's invalidation; such an entry lives until the cache TTL expires.
func (s *TodoService) Board(ctx context.Context) (dto.BoardResponse, error) {
	if s.cache == nil {
		return s.reader.Board(ctx)
	}
	v, err, _ := s.sf.Do("board", func() (interface{}, error) {
		// Every waiter shares this load; it must outlive any single caller.
		ctx := context.WithoutCancel(ctx)
		if b, err := s.cache.Get(ctx); err == nil && b != nil {
			return *b, nil
		} else if err != nil {
			log.Warn().Err(err).Msg("board cache get")
		}
		b, err := s.reader.Board(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, b); err != nil {
			log.Warn().Err(err).Msg("board cache set")
		}
		return b, nil
	})
	if err != nil {
		return dto.BoardResponse{}, err
	}
	return v.(dto.BoardResponse), nil
}

func (s *TodoService) ItemsPage(ctx context.Context, listID int64, page, size int) (dto.ItemsPageResponse, error) {
	return s.reader.ItemsPage(ctx, listID, page, size)
}

func (s *TodoService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("board cache invalidate")
	}
}

// unknownTag turns a missing tag into a bad reference rather than a missing item.
func unknownTag(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return repo.ErrInvalidReference
	}
	return err
}

func mapErr(op string, err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repo.ErrInvalidReference):
		return ErrInvalidReference
	}
	return fmt.Errorf("%s: %w", op, err)
}
