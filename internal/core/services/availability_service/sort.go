package availability_service

import "github.com/suchimauz/space-booking-slots-resolver/internal/core/domain"

type SlotSlice []domain.ResolvedSlot

// quickSort - сортировка слотов по возрастанию часа
func (s SlotSlice) quickSort() SlotSlice {
	if len(s) < 2 {
		return s
	}

	// Выбираем опорный элемент
	pivot := s[len(s)/2]

	// Разделяем слайс на три части
	less := SlotSlice{}
	equal := SlotSlice{}
	greater := SlotSlice{}

	for _, slot := range s {
		if slot.Hour < pivot.Hour {
			less = append(less, slot)
		} else if slot.Hour == pivot.Hour {
			equal = append(equal, slot)
		} else {
			greater = append(greater, slot)
		}
	}

	// Рекурсивно сортируем подмассивы и объединяем их
	return append(append(less.quickSort(), equal...), greater.quickSort()...)
}
