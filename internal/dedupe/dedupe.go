package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent generation requests (monsters and questions). Using a
// centralized singleflight.Group ensures that only one generation job runs
// for a given key while other callers wait for the result.

import "golang.org/x/sync/singleflight"

// MonsterGroup deduplicates monster generation requests keyed by the
// canonical generation key (see keys.GenerationKey).
var MonsterGroup singleflight.Group

// QuestionGroup deduplicates question generation requests keyed by the
// canonical generation key.
var QuestionGroup singleflight.Group
