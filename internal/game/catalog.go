package game

// Ability ids routed by the combat resolver.
const (
	AbilityTriage     = "triage"
	AbilityBarrier    = "barrier"
	AbilityAdrenaline = "adrenaline"
)

// Item effect kinds.
const (
	EffectHealHP = "heal_hp"
	EffectHealMP = "heal_mp"
	EffectBuffXP = "buff_xp"
)

// StatReq is an optional attribute requirement attached to an ability.
// It is catalog data shown to the player; the resolver does not enforce it.
type StatReq struct {
	Stat  string `json:"stat"`
	Value int    `json:"value"`
}

// Ability is a static catalog entry. Never mutated at runtime.
type Ability struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MPCost      int      `json:"mp_cost"`
	Cooldown    int      `json:"cooldown"` // turns
	LevelReq    int      `json:"level_req"`
	StatReq     *StatReq `json:"stat_req,omitempty"`
}

// Item is a static catalog entry. Never mutated at runtime.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	EffectType  string `json:"effect_type"`
	EffectValue int    `json:"effect_value"`
}

// Dungeon is a selectable mission. Topic is the subject-matter context
// passed to the content provider; RecommendedLevel gates entry.
type Dungeon struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Topic            string `json:"topic"`
	Description      string `json:"description"`
	RecommendedLevel int    `json:"recommended_level"`
}

// Catalog bundles the static game content. Built once at startup from the
// defaults or from the server configuration file.
type Catalog struct {
	Abilities []Ability
	Items     []Item
	Dungeons  []Dungeon
}

// AbilityByID returns the catalog ability with the given id, or nil.
func (c *Catalog) AbilityByID(id string) *Ability {
	for i := range c.Abilities {
		if c.Abilities[i].ID == id {
			return &c.Abilities[i]
		}
	}
	return nil
}

// ItemByID returns the catalog item with the given id, or nil.
func (c *Catalog) ItemByID(id string) *Item {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// DungeonByID returns the catalog dungeon with the given id, or nil.
func (c *Catalog) DungeonByID(id string) *Dungeon {
	for i := range c.Dungeons {
		if c.Dungeons[i].ID == id {
			return &c.Dungeons[i]
		}
	}
	return nil
}

// DefaultCatalog returns the built-in game content.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Abilities: []Ability{
			{
				ID:          AbilityTriage,
				Name:        "Triage",
				Description: "Stun monster for 1 turn (Prevents next attack).",
				MPCost:      15,
				Cooldown:    4,
				LevelReq:    3,
				StatReq:     &StatReq{Stat: "intellect", Value: 10},
			},
			{
				ID:          AbilityBarrier,
				Name:        "Barrier Cream",
				Description: "Reduce incoming damage by 50% for 3 turns.",
				MPCost:      20,
				Cooldown:    5,
				LevelReq:    2,
				StatReq:     &StatReq{Stat: "defense", Value: 8},
			},
			{
				ID:          AbilityAdrenaline,
				Name:        "Adrenaline",
				Description: "Next attack deals 200% damage.",
				MPCost:      25,
				Cooldown:    3,
				LevelReq:    5,
				StatReq:     &StatReq{Stat: "physique", Value: 12},
			},
		},
		Items: []Item{
			{
				ID:          "coffee",
				Name:        "Stale Hospital Coffee",
				Description: "Restores 30 Mana. Tastes like mud.",
				Cost:        50,
				EffectType:  EffectHealMP,
				EffectValue: 30,
			},
			{
				ID:          "saline",
				Name:        "Sterile Saline",
				Description: "Restores 50 HP. Basic hydration.",
				Cost:        30,
				EffectType:  EffectHealHP,
				EffectValue: 50,
			},
			{
				ID:          "textbook",
				Name:        "NCLEX Review Book",
				Description: "+50% XP for next 5 victories.",
				Cost:        100,
				EffectType:  EffectBuffXP,
				EffectValue: 5,
			},
		},
		Dungeons: []Dungeon{
			{ID: "foundation", Name: "Hall of Foundations", Topic: "Theoretical Foundations in Nursing", Description: "Where nursing history and theories come alive to haunt you.", RecommendedLevel: 1},
			{ID: "biochem", Name: "Biochem Lab", Topic: "Biochemistry for Nursing", Description: "Mutated enzymes and unstable compounds abound.", RecommendedLevel: 2},
			{ID: "assessment", Name: "Assessment Wing", Topic: "Health Assessment", Description: "Test your observation skills against hidden threats.", RecommendedLevel: 3},
			{ID: "fundamentals", Name: "Fundamentals Ward", Topic: "Fundamentals of Nursing Practice", Description: "The core procedures. Master the basics or perish.", RecommendedLevel: 5},
			{ID: "health_ed", Name: "Education Center", Topic: "Health Education", Description: "Teaching is the best way to learn... and fight.", RecommendedLevel: 6},
			{ID: "microbio", Name: "Petri Dish Pits", Topic: "Microbiology & Parasitology", Description: "Face the microscopic monsters at macro scale.", RecommendedLevel: 8},
			{ID: "community", Name: "Community Outpost", Topic: "Community Health Nursing I (Individual and Family)", Description: "Public health crises manifesting as physical foes.", RecommendedLevel: 10},
			{ID: "nutrition", Name: "Dietary Kitchen", Topic: "Nutrition and Diet Therapy", Description: "You are what you eat. Don't get eaten.", RecommendedLevel: 12},
			{ID: "mcn", Name: "Maternal & Child Ward", Topic: "Care of Mother, Child, Adolescent (Well Clients)", Description: "Protect the vulnerable from complex complications.", RecommendedLevel: 15},
		},
	}
}
