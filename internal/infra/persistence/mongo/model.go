package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"burgerqueen/internal/domain/entity"
)

// userDoc is the persistence shape of entity.User.
type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	IsAdmin  bool               `bson:"isAdmin"`
}

func (d *userDoc) toDomain() *entity.User {
	return &entity.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.Password,
		IsAdmin:      d.IsAdmin,
	}
}

// foodDoc is the persistence shape of entity.FoodItem.
type foodDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image"`
	Category    string             `bson:"category"`
}

func (d *foodDoc) toDomain() entity.FoodItem {
	return entity.FoodItem{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Image:       d.Image,
		Category:    d.Category,
	}
}

func fromFoodDomain(item *entity.FoodItem) *foodDoc {
	return &foodDoc{
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
		Category:    item.Category,
	}
}

// orderItemDoc embeds the line item with its catalog snapshot.
type orderItemDoc struct {
	Food     primitive.ObjectID `bson:"food"`
	Name     string             `bson:"name"`
	Price    float64            `bson:"price"`
	Image    string             `bson:"image,omitempty"`
	Quantity int                `bson:"quantity"`
}

// paymentDetailsDoc is the opaque card summary stored with an order.
type paymentDetailsDoc struct {
	CardBrand string `bson:"cardBrand,omitempty"`
	CardLast4 string `bson:"cardLast4,omitempty"`
	Receipt   string `bson:"receipt,omitempty"`
}

// orderDoc is the persistence shape of entity.Order.
type orderDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	User            primitive.ObjectID `bson:"user"`
	Items           []orderItemDoc     `bson:"items"`
	Address         string             `bson:"address"`
	Payment         string             `bson:"payment"`
	PaymentStatus   string             `bson:"paymentStatus"`
	PaymentDetails  paymentDetailsDoc  `bson:"paymentDetails"`
	PaymentIntentID string             `bson:"paymentIntentId,omitempty"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"createdAt"`
}

func (d *orderDoc) toDomain() *entity.Order {
	items := make([]entity.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, entity.OrderItem{
			FoodID:   item.Food.Hex(),
			Name:     item.Name,
			Price:    item.Price,
			Image:    item.Image,
			Quantity: item.Quantity,
		})
	}

	return &entity.Order{
		ID:              d.ID.Hex(),
		UserID:          d.User.Hex(),
		Items:           items,
		Address:         d.Address,
		Payment:         d.Payment,
		PaymentStatus:   entity.PaymentStatus(d.PaymentStatus),
		PaymentDetails:  entity.PaymentDetails(d.PaymentDetails),
		PaymentIntentID: d.PaymentIntentID,
		Status:          entity.FulfillmentStatus(d.Status),
		CreatedAt:       d.CreatedAt,
	}
}

func fromOrderDomain(order *entity.Order) (*orderDoc, error) {
	userID, err := primitive.ObjectIDFromHex(order.UserID)
	if err != nil {
		return nil, err
	}

	items := make([]orderItemDoc, 0, len(order.Items))
	for _, item := range order.Items {
		foodID, err := primitive.ObjectIDFromHex(item.FoodID)
		if err != nil {
			return nil, err
		}
		items = append(items, orderItemDoc{
			Food:     foodID,
			Name:     item.Name,
			Price:    item.Price,
			Image:    item.Image,
			Quantity: item.Quantity,
		})
	}

	return &orderDoc{
		User:            userID,
		Items:           items,
		Address:         order.Address,
		Payment:         order.Payment,
		PaymentStatus:   string(order.PaymentStatus),
		PaymentDetails:  paymentDetailsDoc(order.PaymentDetails),
		PaymentIntentID: order.PaymentIntentID,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
	}, nil
}
