package lsi

import "strings"

// EntityType is the coarse class of a primary keyword.
type EntityType string

const (
	EntityProduct  EntityType = "PRODUCT"
	EntityService  EntityType = "SERVICE"
	EntityLocation EntityType = "LOCATION"
	EntityBrand    EntityType = "BRAND"
	EntityGeneral  EntityType = "GENERAL"
)

// DefaultCluster is assigned when no cluster rule matches.
const DefaultCluster = "general-lifting"

// classRule maps normalized substring markers to a classification.
// Rules are evaluated in table order; the first hit wins.
type classRule struct {
	markers []string
	entity  EntityType
}

// Explicit lookup tables rather than ad hoc matching, so the ruleset
// is data-driven and testable. Brands before locations before service
// markers: "liebherr rental amsterdam" is a brand keyword first.
var entityRules = []classRule{
	{markers: brandMarkers, entity: EntityBrand},
	{markers: []string{"amsterdam", "rotterdam", "utrecht", "eindhoven", "den haag", "groningen", "netherlands", "holland", "belgium", "germany"}, entity: EntityLocation},
	{markers: []string{"rental", "hire", "rent", "lease", "service", "maintenance", "inspection", "repair", "operator", "training"}, entity: EntityService},
	{markers: []string{"crane", "hoist", "winch", "jib", "mast", "boom", "lift", "parts"}, entity: EntityProduct},
}

var brandMarkers = []string{"liebherr", "potain", "terex", "demag", "tadano", "kobelco", "manitowoc", "grove"}

type clusterRule struct {
	markers []string
	cluster string
}

var clusterRules = []clusterRule{
	{markers: []string{"rental", "hire", "rent", "lease"}, cluster: "crane-rental"},
	{markers: []string{"sale", "buy", "sell", "used", "second hand"}, cluster: "crane-sales"},
	{markers: []string{"service", "maintenance", "repair", "inspection", "certification"}, cluster: "crane-service"},
	{markers: []string{"parts", "spare", "component"}, cluster: "crane-parts"},
	{markers: []string{"tower crane"}, cluster: "tower-cranes"},
	{markers: []string{"mobile crane", "all-terrain", "truck mounted"}, cluster: "mobile-cranes"},
	{markers: []string{"crawler crane", "lattice boom", "tracked"}, cluster: "crawler-cranes"},
}

// ClassifyEntity determines the entity type of a keyword using the
// fixed marker tables. Unmatched keywords are GENERAL.
func ClassifyEntity(keyword string) EntityType {
	lower := strings.ToLower(keyword)
	for _, rule := range entityRules {
		for _, m := range rule.markers {
			if strings.Contains(lower, m) {
				return rule.entity
			}
		}
	}
	return EntityGeneral
}

// SemanticCluster assigns a cluster label to a keyword.
// A brand marker produces "<brand>-cranes"; otherwise the cluster
// rule table applies in order, falling back to DefaultCluster.
func SemanticCluster(keyword string) string {
	lower := strings.ToLower(keyword)

	for _, brand := range brandMarkers {
		if strings.Contains(lower, brand) {
			return brand + "-cranes"
		}
	}

	for _, rule := range clusterRules {
		for _, m := range rule.markers {
			if strings.Contains(lower, m) {
				return rule.cluster
			}
		}
	}

	return DefaultCluster
}
