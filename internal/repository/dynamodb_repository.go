package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cloud-wave-best-zizon/admin-service/internal/domain"
	pkgconfig "github.com/cloud-wave-best-zizon/admin-service/pkg/config"
)

var ErrProductExists = errors.New("product already exists")

type DynamoRepository struct {
	client       *dynamodb.Client
	productTable string
	orderTable   string
	userTable    string
}

func NewDynamoDBClient(ctx context.Context, cfg *pkgconfig.Config) (*dynamodb.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.AWSRegion),
	}
	if cfg.LocalMode {
		// DynamoDB Local accepts any static key pair
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	}), nil
}

func NewDynamoRepository(client *dynamodb.Client, productTable, orderTable, userTable string) *DynamoRepository {
	return &DynamoRepository{
		client:       client,
		productTable: productTable,
		orderTable:   orderTable,
		userTable:    userTable,
	}
}

func (r *DynamoRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	av, err := attributevalue.MarshalMap(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name("product_id"))).
		Build()
	if err != nil {
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.productTable),
		Item:                     av,
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrProductExists
		}
		return fmt.Errorf("failed to put item: %w", err)
	}

	return nil
}

func (r *DynamoRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.productTable),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan products: %w", err)
		}

		var batch []domain.Product
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal products: %w", err)
		}
		products = append(products, batch...)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *DynamoRepository) CountProducts(ctx context.Context, available bool) (int64, error) {
	filter := expression.Name("is_available_for_purchase").Equal(expression.Value(available))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return 0, err
	}

	n, err := r.count(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.productTable),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

func (r *DynamoRepository) CountUsers(ctx context.Context) (int64, error) {
	n, err := r.count(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.userTable),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func (r *DynamoRepository) AggregateOrders(ctx context.Context) (domain.OrderAggregate, error) {
	proj := expression.NamesList(expression.Name("price_paid_in_cents"))
	expr, err := expression.NewBuilder().WithProjection(proj).Build()
	if err != nil {
		return domain.OrderAggregate{}, err
	}

	var agg domain.OrderAggregate
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:                aws.String(r.orderTable),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return domain.OrderAggregate{}, fmt.Errorf("failed to scan orders: %w", err)
		}

		var rows []struct {
			PricePaidInCents int64 `dynamodbav:"price_paid_in_cents"`
		}
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &rows); err != nil {
			return domain.OrderAggregate{}, fmt.Errorf("failed to unmarshal orders: %w", err)
		}
		for _, row := range rows {
			agg.SumCents += row.PricePaidInCents
		}
		agg.Count += int64(len(rows))
	}

	return agg, nil
}

func (r *DynamoRepository) SumOrderCents(ctx context.Context) (int64, error) {
	agg, err := r.AggregateOrders(ctx)
	if err != nil {
		return 0, err
	}
	return agg.SumCents, nil
}

// count pages through a COUNT scan; Scan counts are per page.
func (r *DynamoRepository) count(ctx context.Context, input *dynamodb.ScanInput) (int64, error) {
	input.Select = types.SelectCount

	var total int64
	paginator := dynamodb.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int64(page.Count)
	}
	return total, nil
}
