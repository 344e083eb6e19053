// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JourneysColumns holds the columns for the "journeys" table.
	JourneysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "skill", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "time_commitment", Type: field.TypeString, Nullable: true},
		{Name: "goal", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JourneysTable holds the schema information for the "journeys" table.
	JourneysTable = &schema.Table{
		Name:       "journeys",
		Columns:    JourneysColumns,
		PrimaryKey: []*schema.Column{JourneysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "journey_user_id",
				Unique:  false,
				Columns: []*schema.Column{JourneysColumns[1]},
			},
		},
	}
	// LevelsColumns holds the columns for the "levels" table.
	LevelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "journey_id", Type: field.TypeUUID},
		{Name: "level_number", Type: field.TypeInt},
		{Name: "task", Type: field.TypeString},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "difficulty_rating", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// LevelsTable holds the schema information for the "levels" table.
	LevelsTable = &schema.Table{
		Name:       "levels",
		Columns:    LevelsColumns,
		PrimaryKey: []*schema.Column{LevelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "level_journey_id_level_number",
				Unique:  true,
				Columns: []*schema.Column{LevelsColumns[1], LevelsColumns[2]},
			},
			{
				Name:    "level_journey_id",
				Unique:  false,
				Columns: []*schema.Column{LevelsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password", Type: field.TypeString},
		{Name: "profile_image", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JourneysTable,
		LevelsTable,
		UsersTable,
	}
)

func init() {
}
