package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/kwertop/lexiset"
	"github.com/kwertop/lexiset/authority"
	"github.com/kwertop/lexiset/bitset"
	"github.com/kwertop/lexiset/config"
	"github.com/kwertop/lexiset/filters"
	"github.com/kwertop/lexiset/hash"
	"github.com/kwertop/lexiset/internal/logging"
	"github.com/kwertop/lexiset/internal/util"
	"github.com/kwertop/lexiset/internal/wordsource"
	"github.com/kwertop/lexiset/trie"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// lexicon is everything the commands query: the filter, the tree and the
// authority, all loaded from the same sources.
type lexicon struct {
	filter    *filters.MembershipFilter
	tree      *trie.PrefixTree
	authority authority.WordAuthority
	client    *redis.Client
	logger    *logging.Logger
}

func newLogger(conf *config.Config) (*logging.Logger, error) {
	if conf.Logger == nil {
		return logging.Nop(), nil
	}
	loggerConf := *conf.Logger
	if loggerConf.Path != "" {
		loggerConf.Path = conf.ResolvePath(loggerConf.Path)
	}
	return logging.NewLogger(&loggerConf)
}

// openLexicon builds the empty structures described by _conf_
func openLexicon(conf *config.Config, logger *logging.Logger) (*lexicon, error) {
	lex := &lexicon{tree: trie.New(), logger: logger}

	if conf.Redis != nil && conf.Redis.URI != "" {
		client, err := lexiset.NewRedisClientFromURI(conf.Redis.URI)
		if err != nil {
			return nil, err
		}
		lex.client = client
	}

	if lex.client != nil {
		if conf.Redis.WordsKey != "" {
			lex.authority = authority.NewRedisWordAuthorityWithKey(lex.client, conf.Redis.WordsKey)
		} else {
			lex.authority = authority.NewRedisWordAuthority(lex.client)
		}
	} else {
		lex.authority = authority.NewMemWordAuthority()
	}

	filter, err := newFilter(conf, lex.client, lex.authority, logger)
	if err != nil {
		lex.close()
		return nil, err
	}
	lex.filter = filter
	return lex, nil
}

func filterSizing(conf *config.FilterConfig) (size, numHashes uint) {
	size = conf.Size
	if size == 0 {
		size = util.CalculateFilterSize(util.Max(conf.ExpectedItems, 1), conf.ErrorRate)
	}
	size = util.Max(size, 1)
	numHashes = conf.NumHashes
	if numHashes == 0 {
		numHashes = util.CalculateNumHashes(size, conf.ExpectedItems)
	}
	return size, numHashes
}

func newFilter(conf *config.Config, client *redis.Client, wordAuthority authority.WordAuthority, logger *logging.Logger) (*filters.MembershipFilter, error) {
	hasher, err := hash.HasherByName(conf.Filter.Hasher)
	if err != nil {
		return nil, err
	}
	opts := []filters.Option{filters.WithHasher(hasher), filters.WithLogger(logger)}
	size, numHashes := filterSizing(conf.Filter)

	switch strings.ToLower(conf.Filter.Backend) {
	case config.BackendRedis:
		if client == nil {
			return nil, errors.New("lexiset: redis backend needs a redis uri")
		}
		if conf.Redis.BitsKey == "" {
			return filters.NewRedisMembershipFilter(client, size, numHashes, wordAuthority, opts...)
		}
		bits, err := bitset.NewBitSetRedisWithKey(client, size, conf.Redis.BitsKey)
		if err != nil {
			return nil, err
		}
		return filters.NewMembershipFilterWithBitSet(size, numHashes, bits, wordAuthority, opts...)
	case config.BackendRoaring:
		return filters.NewRoaringMembershipFilter(size, numHashes, wordAuthority, opts...)
	default:
		return filters.NewMemMembershipFilter(size, numHashes, wordAuthority, opts...), nil
	}
}

// load fills the filter, the tree and the authority from _paths_. The three
// are independent, so each is loaded by its own goroutine. A source that
// can't be read is logged and skipped by all three; only a failure to write
// the authority is returned.
func (lex *lexicon) load(ctx context.Context, paths []string) error {
	sources := make(map[string][]string, len(paths))
	readable := paths[:0:0]
	for _, path := range paths {
		words, err := wordsource.ReadFile(path)
		if err != nil {
			lex.logger.Warn("cannot read word source, skipping it", "path", path, "error", err)
			continue
		}
		sources[path] = words
		readable = append(readable, path)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for _, path := range readable {
			for _, word := range sources[path] {
				lex.filter.Add(word)
			}
		}
		return nil
	})

	g.Go(func() error {
		skipped := 0
		for _, path := range readable {
			for _, word := range sources[path] {
				if err := lex.tree.Insert(word); err != nil {
					skipped++
				}
			}
		}
		if skipped > 0 {
			lex.logger.Warn("words the prefix tree can't hold were skipped", "skipped", skipped)
		}
		return nil
	})

	g.Go(func() error {
		for _, path := range readable {
			if err := authority.AddWords(ctx, lex.authority, sources[path]); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	lex.logger.Info("lexicon loaded",
		"sources", len(readable),
		"skipped_sources", len(paths)-len(readable),
		"words", lex.tree.Len(),
		"bits", lex.filter.GetCap(),
		"hashes", lex.filter.GetNumHashes(),
		"fpr", lex.filter.FalsePositiveRate())
	return nil
}

// verdict is the answer of every tier for one word
type verdict struct {
	Word      string
	Possibly  bool
	Certainly bool
	Exact     bool
}

func (lex *lexicon) check(ctx context.Context, word string) verdict {
	return verdict{
		Word:      word,
		Possibly:  lex.filter.PossiblyContains(word),
		Certainly: lex.filter.CertainlyContains(ctx, word),
		Exact:     lex.tree.Search(word),
	}
}

func (lex *lexicon) close() {
	if lex.client != nil {
		if err := lex.client.Close(); err != nil {
			lex.logger.Warn("cannot close redis client", "error", err)
		}
	}
	_ = lex.logger.Sync()
}
