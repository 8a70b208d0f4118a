package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/vats-app/vats-api/internal/domain/score"
)

type ScoreRepository struct {
	ddb   API
	table string
}

func NewScoreRepository(ddb API, table string) *ScoreRepository {
	return &ScoreRepository{ddb: ddb, table: table}
}

type teamScoreItem struct {
	TeamID              string `dynamodbav:"teamId"`
	Sport               string `dynamodbav:"sport"`
	SchoolName          string `dynamodbav:"schoolName,omitempty"`
	Conference          string `dynamodbav:"conference,omitempty"`
	RegularSeasonPoints int    `dynamodbav:"regularSeasonPoints"`
	PostseasonPoints    int    `dynamodbav:"postseasonPoints"`
}

func (r *ScoreRepository) Scan(ctx context.Context, sportFilter string) ([]score.TeamScore, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	}
	if sportFilter != "" {
		input.FilterExpression = aws.String("#s = :sport")
		input.ExpressionAttributeNames = map[string]*string{
			"#s": aws.String("sport"),
		}
		input.ExpressionAttributeValues = map[string]*dynamodb.AttributeValue{
			":sport": {S: aws.String(sportFilter)},
		}
	}

	var out []score.TeamScore
	var decodeErr error
	err := r.ddb.ScanPagesWithContext(ctx, input, func(page *dynamodb.ScanOutput, _ bool) bool {
		var items []teamScoreItem
		if decodeErr = dynamodbattribute.UnmarshalListOfMaps(page.Items, &items); decodeErr != nil {
			return false
		}
		for _, item := range items {
			out = append(out, teamScoreFromItem(item))
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("scan team score items: %w", err)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("unmarshal team score items: %w", decodeErr)
	}

	return out, nil
}

func (r *ScoreRepository) Get(ctx context.Context, teamID, sportID string) (score.TeamScore, bool, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]*dynamodb.AttributeValue{
			"teamId": {S: aws.String(teamID)},
			"sport":  {S: aws.String(sportID)},
		},
	}

	resp, err := r.ddb.GetItemWithContext(ctx, input)
	if err != nil {
		return score.TeamScore{}, false, fmt.Errorf("get team score item: %w", err)
	}
	if resp.Item == nil {
		return score.TeamScore{}, false, nil
	}

	var item teamScoreItem
	if err := dynamodbattribute.UnmarshalMap(resp.Item, &item); err != nil {
		return score.TeamScore{}, false, fmt.Errorf("unmarshal team score item: %w", err)
	}

	return teamScoreFromItem(item), true, nil
}

func (r *ScoreRepository) Upsert(ctx context.Context, item score.TeamScore) error {
	av, err := dynamodbattribute.MarshalMap(teamScoreItem{
		TeamID:              item.TeamID,
		Sport:               item.Sport,
		SchoolName:          item.SchoolName,
		Conference:          item.Conference,
		RegularSeasonPoints: item.RegularSeasonPoints,
		PostseasonPoints:    item.PostseasonPoints,
	})
	if err != nil {
		return fmt.Errorf("marshal team score item: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	}
	if _, err := r.ddb.PutItemWithContext(ctx, input); err != nil {
		return fmt.Errorf("put team score item: %w", err)
	}

	return nil
}

func teamScoreFromItem(item teamScoreItem) score.TeamScore {
	return score.TeamScore{
		TeamID:              item.TeamID,
		Sport:               item.Sport,
		SchoolName:          item.SchoolName,
		Conference:          item.Conference,
		RegularSeasonPoints: item.RegularSeasonPoints,
		PostseasonPoints:    item.PostseasonPoints,
	}
}
