package querybuilder

import "testing"

func assertQuery(t *testing.T, gotQuery, wantQuery string, gotArgs []any, wantArgs ...any) {
	t.Helper()
	if gotQuery != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, gotQuery)
	}
	if len(gotArgs) != len(wantArgs) {
		t.Fatalf("unexpected args: %+v", gotArgs)
	}
	for i := range wantArgs {
		if gotArgs[i] != wantArgs[i] {
			t.Fatalf("arg %d = %v, want %v", i, gotArgs[i], wantArgs[i])
		}
	}
}

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("club_infos").
		Where(Eq("name_key", "napoli"), IsNull("deleted_at")).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	assertQuery(t, query, "SELECT id, name FROM club_infos WHERE name_key = $1 AND deleted_at IS NULL ORDER BY id LIMIT 1", args, "napoli")
}

func TestSelectBuilder_InAndExpr(t *testing.T) {
	query, args, err := Select("id").
		From("player_stats").
		Where(In("team_key", []any{"roma", "lazio"}), Expr("age > ?", 30)).
		Suffix("FOR UPDATE").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	assertQuery(t, query, "SELECT id FROM player_stats WHERE team_key IN ($1, $2) AND age > $3 FOR UPDATE", args, "roma", "lazio", 30)
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	query, _, err := Select("id").From("t").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	assertQuery(t, query, "SELECT id FROM t WHERE 1=0", nil)
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("club_infos").
		Columns("name_key", "name").
		Values("milan", "Milan").
		Suffix("ON CONFLICT (name_key) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	assertQuery(t, query, "INSERT INTO club_infos (name_key, name) VALUES ($1, $2) ON CONFLICT (name_key) DO NOTHING", args, "milan", "Milan")
}

func TestInsertBuilder_RowLengthMismatch(t *testing.T) {
	if _, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("club_infos").
		Set("venue_name", "San Siro").
		SetExpr("updated_at", "NOW()").
		SetExpr("venue_capacity", "COALESCE(?, venue_capacity)", 75817).
		Where(Eq("name_key", "inter")).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	assertQuery(t, query,
		"UPDATE club_infos SET venue_name = $1, updated_at = NOW(), venue_capacity = COALESCE($2, venue_capacity) WHERE name_key = $3 RETURNING id",
		args, "San Siro", 75817, "inter")
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("player_stats").
		Where(Expr("id = (SELECT id FROM player_stats WHERE first_name_key = ? ORDER BY id LIMIT 1)", "victor")).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	assertQuery(t, query,
		"DELETE FROM player_stats WHERE id = (SELECT id FROM player_stats WHERE first_name_key = $1 ORDER BY id LIMIT 1) RETURNING id",
		args, "victor")
}

func TestDeleteBuilder_RequiresCondition(t *testing.T) {
	if _, _, err := DeleteFrom("player_stats").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional delete")
	}
}

type clubRow struct {
	ID      int64  `db:"-"`
	NameKey string `db:"name_key"`
	Name    string `db:"name"`
	Venue   string `db:"venue_name,omitempty"`
	hidden  string
}

func TestInsertModel(t *testing.T) {
	query, args, err := InsertModel("club_infos", clubRow{NameKey: "roma", Name: "Roma", Venue: "Olimpico", hidden: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}
	assertQuery(t, query, "INSERT INTO club_infos (name_key, name, venue_name) VALUES ($1, $2, $3) RETURNING id", args, "roma", "Roma", "Olimpico")
}

func TestUpsertModel(t *testing.T) {
	query, _, err := UpsertModel("club_infos", &clubRow{NameKey: "roma", Name: "Roma"}, []string{"name_key"}, "venue_name")
	if err != nil {
		t.Fatalf("build upsert model: %v", err)
	}
	want := "INSERT INTO club_infos (name_key, name, venue_name) VALUES ($1, $2, $3) ON CONFLICT (name_key) DO UPDATE SET name = EXCLUDED.name"
	assertQuery(t, query, want, []any{"roma", "Roma", ""}, "roma", "Roma", "")
}

func TestColumns(t *testing.T) {
	cols := Columns(clubRow{})
	if len(cols) != 3 || cols[0] != "name_key" || cols[2] != "venue_name" {
		t.Fatalf("unexpected columns: %v", cols)
	}
	if Columns(nil) != nil {
		t.Fatalf("expected nil columns for nil model")
	}
}
