package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/vats-app/vats-api/internal/domain/roster"
)

type RosterRepository struct {
	ddb   API
	table string
}

func NewRosterRepository(ddb API, table string) *RosterRepository {
	return &RosterRepository{ddb: ddb, table: table}
}

type selectionItem struct {
	UserID          string         `dynamodbav:"userId"`
	Picks           []pickItem     `dynamodbav:"picks"`
	PerkAdjustments map[string]int `dynamodbav:"perkAdjustments,omitempty"`
}

type pickItem struct {
	TeamID              string `dynamodbav:"teamId"`
	Sport               string `dynamodbav:"sport"`
	SchoolName          string `dynamodbav:"schoolName,omitempty"`
	Conference          string `dynamodbav:"conference,omitempty"`
	RegularSeasonPoints *int   `dynamodbav:"regularSeasonPoints,omitempty"`
	PostseasonPoints    *int   `dynamodbav:"postseasonPoints,omitempty"`
}

func (r *RosterRepository) GetByUser(ctx context.Context, userID string) (roster.Selection, bool, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]*dynamodb.AttributeValue{
			"userId": {S: aws.String(userID)},
		},
	}

	resp, err := r.ddb.GetItemWithContext(ctx, input)
	if err != nil {
		return roster.Selection{}, false, fmt.Errorf("get selection item: %w", err)
	}
	if resp.Item == nil {
		return roster.Selection{}, false, nil
	}

	var item selectionItem
	if err := dynamodbattribute.UnmarshalMap(resp.Item, &item); err != nil {
		return roster.Selection{}, false, fmt.Errorf("unmarshal selection item: %w", err)
	}

	return selectionFromItem(item), true, nil
}

func (r *RosterRepository) ScanAll(ctx context.Context) ([]roster.Selection, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	}

	var out []roster.Selection
	var decodeErr error
	err := r.ddb.ScanPagesWithContext(ctx, input, func(page *dynamodb.ScanOutput, _ bool) bool {
		var items []selectionItem
		if decodeErr = dynamodbattribute.UnmarshalListOfMaps(page.Items, &items); decodeErr != nil {
			return false
		}
		for _, item := range items {
			out = append(out, selectionFromItem(item))
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("scan selection items: %w", err)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("unmarshal selection items: %w", decodeErr)
	}

	return out, nil
}

func (r *RosterRepository) Upsert(ctx context.Context, selection roster.Selection) error {
	av, err := dynamodbattribute.MarshalMap(selectionToItem(selection))
	if err != nil {
		return fmt.Errorf("marshal selection item: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	}
	if _, err := r.ddb.PutItemWithContext(ctx, input); err != nil {
		return fmt.Errorf("put selection item: %w", err)
	}

	return nil
}

func selectionFromItem(item selectionItem) roster.Selection {
	sel := roster.Selection{
		UserID:          item.UserID,
		PerkAdjustments: item.PerkAdjustments,
	}
	if item.Picks != nil {
		sel.Picks = make([]roster.Pick, len(item.Picks))
		for i, p := range item.Picks {
			sel.Picks[i] = roster.Pick{
				TeamID:              p.TeamID,
				Sport:               p.Sport,
				SchoolName:          p.SchoolName,
				Conference:          p.Conference,
				RegularSeasonPoints: p.RegularSeasonPoints,
				PostseasonPoints:    p.PostseasonPoints,
			}
		}
	}
	return sel
}

func selectionToItem(sel roster.Selection) selectionItem {
	item := selectionItem{
		UserID:          sel.UserID,
		PerkAdjustments: sel.PerkAdjustments,
	}
	if sel.Picks != nil {
		item.Picks = make([]pickItem, len(sel.Picks))
		for i, p := range sel.Picks {
			item.Picks[i] = pickItem{
				TeamID:              p.TeamID,
				Sport:               p.Sport,
				SchoolName:          p.SchoolName,
				Conference:          p.Conference,
				RegularSeasonPoints: p.RegularSeasonPoints,
				PostseasonPoints:    p.PostseasonPoints,
			}
		}
	}
	return item
}
