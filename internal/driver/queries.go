package driver

// The timeline queries come in two static variants each: one for the
// whole archive and one scoped to a focal character. The caller picks a
// variant with a branch instead of splicing filter clauses into query
// text. The only token ever interpolated is the sort direction, and the
// caller obtains it from a closed enum.

const (
	CharacterProfileQuery = `
		MATCH (c:Character {slug: $slug})
		RETURN c { .* } AS profile
	`

	TimelineCountQuery = `
		MATCH (e:Episode)<-[:PART_OF]-(:Scene)
		RETURN count(DISTINCT e) AS totalCount
	`

	TimelineCountByCharacterQuery = `
		MATCH (:Character {slug: $slug})-[:APPEARS_IN]->(:Scene)-[:PART_OF]->(e:Episode)
		RETURN count(DISTINCT e) AS totalCount
	`

	// %s is the sort direction keyword, ASC or DESC. Scenes stay in
	// ordinal order whichever way the episodes run.
	TimelineDataQuery = `
		MATCH (s:Scene)-[:PART_OF]->(e:Episode)
		OPTIONAL MATCH (c:Character)-[:APPEARS_IN]->(s)

		WITH e, s, [x IN collect(DISTINCT {
			name: c.name,
			slug: c.slug
		}) WHERE x.slug IS NOT NULL] AS characters
		ORDER BY e.date %[1]s, s.id ASC

		WITH e, collect({
			sceneId: s.id,
			text: s.text,
			characters: characters
		}) AS scenes

		RETURN e.pid AS pid,
		       e.date AS date,
		       scenes
		ORDER BY e.date %[1]s
		SKIP $skip LIMIT $limit
	`

	TimelineDataByCharacterQuery = `
		MATCH (focal:Character {slug: $slug})-[:APPEARS_IN]->(s:Scene)-[:PART_OF]->(e:Episode)
		OPTIONAL MATCH (c:Character)-[:APPEARS_IN]->(s)
		WHERE c <> focal

		WITH e, s, [x IN collect(DISTINCT {
			name: c.name,
			slug: c.slug
		}) WHERE x.slug IS NOT NULL] AS characters
		ORDER BY e.date %[1]s, s.id ASC

		WITH e, collect({
			sceneId: s.id,
			text: s.text,
			characters: characters
		}) AS scenes

		RETURN e.pid AS pid,
		       e.date AS date,
		       scenes
		ORDER BY e.date %[1]s
		SKIP $skip LIMIT $limit
	`

	EpisodeByDateQuery = `
		MATCH (e:Episode {date: date($date)})
		MATCH (s:Scene)-[:PART_OF]->(e)
		OPTIONAL MATCH (c:Character)-[:APPEARS_IN]->(s)

		WITH e, s, collect(DISTINCT {
			name: c.name,
			slug: c.slug
		}) AS characters
		ORDER BY s.id ASC

		RETURN e.pid AS pid,
		       e.date AS date,
		       e.synopsis AS synopsis,
		       collect({
		           sceneId: s.id,
		           text: s.text,
		           characters: [char IN characters WHERE char.slug IS NOT NULL]
		       }) AS scenes
		LIMIT 1
	`

	// One expansion step of the family traversal: every character one
	// CHILD_OF or SPOUSE edge away from the current frontier.
	FamilyNeighboursQuery = `
		MATCH (p:Character)-[:CHILD_OF|SPOUSE]-(q:Character)
		WHERE p.slug IN $slugs
		RETURN DISTINCT q.slug AS slug,
		       q.name AS name,
		       q.gender AS gender,
		       q.dob AS dob,
		       q.dod AS dod
	`

	// All parentage and partnership edges inside the relevant set. The
	// directed match reports each edge exactly once.
	FamilyEdgesQuery = `
		MATCH (a:Character)-[r:CHILD_OF|SPOUSE]->(b:Character)
		WHERE a.slug IN $slugs AND b.slug IN $slugs
		RETURN a.slug AS from,
		       b.slug AS to,
		       type(r) AS relType,
		       r.status AS status
	`
)
